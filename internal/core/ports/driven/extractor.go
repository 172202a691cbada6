package driven

import (
	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// Extractor turns the bytes of one format family into plain text.
// A non-nil error is a failure reason; the caller decides how to degrade.
// Implementations must be safe for concurrent use.
type Extractor interface {
	// Name returns the strategy name recorded in document metadata.
	Name() string

	// Extract returns the normalised text of raw.
	// Empty text with a nil error means the file held no text.
	Extract(raw domain.RawFile) (string, error)
}

// ExtractorRegistry selects the Extractor for a classified FormatKind.
type ExtractorRegistry interface {
	// Get returns the extractor for kind.
	// Returns false if no extractor is registered for the kind.
	Get(kind domain.FormatKind) (Extractor, bool)

	// Register binds an extractor to a kind, replacing any existing binding.
	Register(kind domain.FormatKind, extractor Extractor)

	// Kinds returns the kinds that have an extractor, in classification order.
	Kinds() []domain.FormatKind
}
