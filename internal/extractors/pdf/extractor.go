// Package pdf extracts page text from PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "pdf"
}

// Extract returns one "[Page N]" block per page with text, in page order.
// A page the PDF library cannot read is skipped rather than failing the file.
func (e *Extractor) Extract(raw domain.RawFile) (text string, err error) {
	// The PDF library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	var pages []string
	for i := 1; i <= numPages; i++ {
		content := strings.TrimSpace(pageText(reader, i, raw.FileName))
		if content == "" {
			continue
		}
		pages = append(pages, fmt.Sprintf("[Page %d]\n%s", i, content))
	}

	text = strings.Join(pages, "\n\n")
	logger.Info("PDF '%s': extracted %d pages, %d chars", raw.FileName, numPages, utf8.RuneCountInString(text))
	return text, nil
}

// pageText returns the plain text of page i, or "" if it cannot be read.
func pageText(reader *pdf.Reader, i int, fileName string) (content string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("PDF '%s': page %d panicked: %v", fileName, i, r)
			content = ""
		}
	}()

	page := reader.Page(i)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		logger.Warn("PDF '%s': page %d: %v", fileName, i, err)
		return ""
	}
	return content
}
