// Package chunker provides a sliding-window text chunker.
package chunker

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

// Processor splits text into fixed-size windows that share a fixed overlap.
// Sizes count characters (runes), not bytes, so multi-byte text is never
// split inside a code point. It implements the Chunker interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		p.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		p.overlap = overlap
	}
}

// New creates a new chunker processor with the given options.
// Returns domain.ErrInvalidChunkConfig unless 0 < size and 0 <= overlap < size.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidChunkConfig, p.chunkSize)
	}
	if p.overlap < 0 || p.overlap >= p.chunkSize {
		return nil, fmt.Errorf("%w: overlap must be in [0, %d), got %d",
			domain.ErrInvalidChunkConfig, p.chunkSize, p.overlap)
	}

	return p, nil
}

// Default returns a processor with the default size and overlap.
func Default() *Processor {
	return &Processor{chunkSize: DefaultChunkSize, overlap: DefaultChunkOverlap}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Size returns the chunk size in characters.
func (p *Processor) Size() int { return p.chunkSize }

// Overlap returns the overlap in characters.
func (p *Processor) Overlap() int { return p.overlap }

// Chunk splits text into windows [start, min(start+size, n)).
// After each window that does not reach the end, start moves to end-overlap.
// Empty or all-whitespace text produces no chunks.
func (p *Processor) Chunk(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)

	step := p.chunkSize - p.overlap
	chunks := make([]string, 0, n/step+1)

	start := 0
	for {
		end := start + p.chunkSize
		if end > n {
			end = n
		}

		chunks = append(chunks, string(runes[start:end]))

		if end == n {
			break
		}
		start = end - p.overlap
	}

	return chunks
}
