package domain

// RawFile represents opaque bytes handed to the parser by a collaborator.
// It is the fetcher's output before extraction.
type RawFile struct {
	// SourceID is the opaque external identifier (e.g. a Drive file ID).
	// May be empty.
	SourceID string

	// FileName is the original name, used for extension-based classification.
	FileName string

	// MIMEType is the declared content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}

// Size returns the number of content bytes.
func (r RawFile) Size() int {
	return len(r.Content)
}
