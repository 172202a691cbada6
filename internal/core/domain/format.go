package domain

import "strings"

// FormatKind is the classification of a RawFile.
// Exactly one kind is selected per file; the zero value is never produced
// by classification.
type FormatKind string

// Format kinds in classification precedence order.
const (
	FormatPDF          FormatKind = "pdf"
	FormatWord         FormatKind = "word"
	FormatSpreadsheet  FormatKind = "spreadsheet"
	FormatPresentation FormatKind = "presentation"
	FormatGoogleExport FormatKind = "google_export"
	FormatPlainText    FormatKind = "plain_text"
	FormatFallback     FormatKind = "fallback"
)

// AllFormatKinds returns every kind in precedence order.
func AllFormatKinds() []FormatKind {
	return []FormatKind{
		FormatPDF,
		FormatWord,
		FormatSpreadsheet,
		FormatPresentation,
		FormatGoogleExport,
		FormatPlainText,
		FormatFallback,
	}
}

// IsValid returns true if the kind is recognised.
func (k FormatKind) IsValid() bool {
	for _, kind := range AllFormatKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// ExtractorKind returns the kind whose extractor handles this format.
// Google Workspace exports and unrecognised files are read as plain text.
func (k FormatKind) ExtractorKind() FormatKind {
	switch k {
	case FormatGoogleExport, FormatFallback:
		return FormatPlainText
	default:
		return k
	}
}

// Description returns a human-readable label for the kind.
func (k FormatKind) Description() string {
	switch k {
	case FormatPDF:
		return "PDF document"
	case FormatWord:
		return "Word document"
	case FormatSpreadsheet:
		return "Spreadsheet or CSV"
	case FormatPresentation:
		return "Presentation"
	case FormatGoogleExport:
		return "Google Workspace export"
	case FormatPlainText:
		return "Plain text or markup"
	case FormatFallback:
		return "Unrecognised (decoded as text)"
	default:
		return "Unknown"
	}
}

// NormaliseMIME lower-cases a MIME type and strips any parameters,
// so "Text/Plain; charset=utf-8" becomes "text/plain".
func NormaliseMIME(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
