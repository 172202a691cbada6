package driven

// Chunker splits normalised text into ordered, overlapping windows.
type Chunker interface {
	// Name returns the chunker name for logging.
	Name() string

	// Chunk splits text. Text that is empty after trimming yields no chunks.
	Chunk(text string) []string

	// Size returns the maximum window length in characters.
	Size() int

	// Overlap returns the number of characters shared by adjacent windows.
	Overlap() int
}
