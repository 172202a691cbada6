package driving

import (
	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// DocumentParser is the single entry point for turning a file into chunks.
type DocumentParser interface {
	// Parse classifies, extracts and chunks raw.
	// It never fails: every fault is reported inside the returned document.
	Parse(raw domain.RawFile) domain.ParsedDocument

	// Classify returns the FormatKind that Parse would route raw to.
	Classify(mimeType, fileName string) domain.FormatKind
}

// FormatRule describes one classification rule for display.
type FormatRule struct {
	// Kind is the format family the rule selects.
	Kind domain.FormatKind

	// MIMETypes are the exact (normalised) MIME values that match.
	MIMETypes []string

	// Extensions are the lower-case file extensions that match.
	Extensions []string
}

// FormatCatalog lists the classification rules in evaluation order.
type FormatCatalog interface {
	Rules() []FormatRule
}
