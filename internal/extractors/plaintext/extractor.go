// Package plaintext decodes text, Markdown, JSON, HTML and XML files.
// It is also the fallback for unrecognised types.
package plaintext

import (
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var markupMIMETypes = map[string]struct{}{
	"text/html":             {},
	"application/xhtml+xml": {},
}

// Extractor handles plain text documents.
type Extractor struct {
	stripMarkup bool
	converter   *converter.Converter
}

// Option configures the plain text extractor.
type Option func(*Extractor)

// WithStripMarkup converts HTML input to Markdown instead of passing
// the tags through.
func WithStripMarkup(strip bool) Option {
	return func(e *Extractor) {
		e.stripMarkup = strip
	}
}

// New creates a new plain text extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.stripMarkup {
		e.converter = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		)
	}
	return e
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "plain_text"
}

// Extract decodes the content as UTF-8. It never fails: invalid byte
// sequences become U+FFFD.
func (e *Extractor) Extract(raw domain.RawFile) (string, error) {
	text := Decode(raw.Content)

	if e.stripMarkup && isMarkup(raw) {
		md, err := e.converter.ConvertString(text)
		if err != nil {
			logger.Warn("Markup conversion failed for '%s', keeping raw text: %v", raw.FileName, err)
		} else {
			text = md
		}
	}

	logger.Info("Plain text '%s': %d chars", raw.FileName, utf8.RuneCountInString(text))
	return text, nil
}

// Decode converts bytes to a valid UTF-8 string, replacing each invalid
// sequence with the Unicode replacement character.
func Decode(content []byte) string {
	text, err := unicode.UTF8.NewDecoder().String(string(content))
	if err != nil {
		return strings.ToValidUTF8(string(content), "\uFFFD")
	}
	return text
}

func isMarkup(raw domain.RawFile) bool {
	if _, ok := markupMIMETypes[domain.NormaliseMIME(raw.MIMEType)]; ok {
		return true
	}
	name := strings.ToLower(raw.FileName)
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}
