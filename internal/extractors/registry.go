package extractors

import (
	"sync"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/pdf"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/plaintext"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/presentation"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/spreadsheet"
	"github.com/custodia-labs/sercha-docparse/internal/extractors/word"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps format kinds to extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[domain.FormatKind]driven.Extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.FormatKind]driven.Extractor),
	}
}

// Options configures the built-in extractors.
type Options struct {
	// StripMarkup converts HTML input to Markdown before chunking.
	StripMarkup bool
}

// NewDefaultRegistry creates a registry holding the five built-in extractors.
func NewDefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	r.Register(domain.FormatPDF, pdf.New())
	r.Register(domain.FormatWord, word.New())
	r.Register(domain.FormatSpreadsheet, spreadsheet.New())
	r.Register(domain.FormatPresentation, presentation.New())
	r.Register(domain.FormatPlainText, plaintext.New(plaintext.WithStripMarkup(opts.StripMarkup)))
	return r
}

// Register binds an extractor to a kind, replacing any existing binding.
func (r *Registry) Register(kind domain.FormatKind, extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[kind] = extractor
}

// Get returns the extractor for kind.
func (r *Registry) Get(kind domain.FormatKind) (driven.Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[kind]
	return e, ok
}

// Kinds returns the registered kinds in classification order.
func (r *Registry) Kinds() []domain.FormatKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var kinds []domain.FormatKind
	for _, k := range domain.AllFormatKinds() {
		if _, ok := r.extractors[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
