package services

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
)

// Ensure Classifier implements the interface.
var _ driving.FormatCatalog = (*Classifier)(nil)

// formatRule is a pure predicate over a normalised MIME type and extension.
type formatRule struct {
	kind       domain.FormatKind
	mimeTypes  map[string]struct{}
	extensions map[string]struct{}
}

func newRule(kind domain.FormatKind, mimeTypes []string, extensions []string) formatRule {
	r := formatRule{
		kind:       kind,
		mimeTypes:  make(map[string]struct{}, len(mimeTypes)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, m := range mimeTypes {
		r.mimeTypes[m] = struct{}{}
	}
	for _, e := range extensions {
		r.extensions[e] = struct{}{}
	}
	return r
}

// matches reports whether the MIME type OR the extension belongs to the rule.
func (r formatRule) matches(mimeType, ext string) bool {
	if _, ok := r.mimeTypes[mimeType]; ok {
		return true
	}
	if ext == "" {
		return false
	}
	_, ok := r.extensions[ext]
	return ok
}

func (r formatRule) describe() driving.FormatRule {
	return driving.FormatRule{
		Kind:       r.kind,
		MIMETypes:  sortedKeys(r.mimeTypes),
		Extensions: sortedKeys(r.extensions),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// defaultRules is evaluated first-match-wins, in this order.
var defaultRules = []formatRule{
	newRule(domain.FormatPDF,
		[]string{"application/pdf"},
		[]string{".pdf"}),
	newRule(domain.FormatWord,
		[]string{
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/msword",
		},
		[]string{".docx", ".doc"}),
	newRule(domain.FormatSpreadsheet,
		[]string{
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"application/vnd.ms-excel",
			"text/csv",
			"application/csv",
		},
		[]string{".xlsx", ".xls", ".csv"}),
	newRule(domain.FormatPresentation,
		[]string{
			"application/vnd.openxmlformats-officedocument.presentationml.presentation",
			"application/vnd.ms-powerpoint",
		},
		[]string{".pptx", ".ppt"}),
	newRule(domain.FormatGoogleExport,
		[]string{
			"application/vnd.google-apps.document",
			"application/vnd.google-apps.spreadsheet",
			"application/vnd.google-apps.presentation",
			"application/vnd.google-apps.drawing",
		},
		nil),
	newRule(domain.FormatPlainText,
		[]string{
			"text/plain",
			"text/markdown",
			"text/x-markdown",
			"text/x-rst",
			"application/json",
			"text/html",
			"application/xml",
			"text/xml",
		},
		nil),
}

// Classifier maps a MIME type and file name to exactly one FormatKind.
// It is stateless after construction and safe for concurrent use.
type Classifier struct {
	rules []formatRule
}

// NewClassifier creates a classifier with the built-in rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Classify returns the first matching FormatKind, or FormatFallback.
func (c *Classifier) Classify(mimeType, fileName string) domain.FormatKind {
	m := domain.NormaliseMIME(mimeType)
	ext := Extension(fileName)
	for _, r := range c.rules {
		if r.matches(m, ext) {
			return r.kind
		}
	}
	return domain.FormatFallback
}

// Rules returns the rule table in evaluation order.
func (c *Classifier) Rules() []driving.FormatRule {
	out := make([]driving.FormatRule, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r.describe())
	}
	return out
}

// Extension returns the lower-cased final extension of a file name, with the dot.
func Extension(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
