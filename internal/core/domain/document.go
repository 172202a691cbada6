package domain

import (
	"encoding/json"
	"strings"
)

// ChunkSeparator joins chunks when projecting the full text.
const ChunkSeparator = "\n\n"

// Metadata keys set on every ParsedDocument.
const (
	MetaSourceID          = "source_id"
	MetaFileName          = "file_name"
	MetaMIMEType          = "mime_type"
	MetaFormat            = "format"
	MetaExtractor         = "extractor"
	MetaChunkSize         = "chunk_size"
	MetaOverlap           = "overlap"
	MetaChunkCount        = "chunk_count"
	MetaCharCount         = "char_count"
	MetaExtractionFailure = "extraction_failure"
	MetaFallback          = "fallback"
)

// ParsedDocument is the result of parsing one RawFile.
// It is immutable: accessors return copies, and there is no setter.
// Chunk order is retrieval order; chunk i always precedes chunk i+1
// in the source text.
type ParsedDocument struct {
	sourceID string
	fileName string
	mimeType string
	chunks   []string
	metadata map[string]string
	err      string
}

// NewParsedDocument builds a ParsedDocument for raw.
// The chunks and metadata are copied; errMsg is empty when parsing succeeded.
func NewParsedDocument(raw RawFile, chunks []string, metadata map[string]string, errMsg string) ParsedDocument {
	doc := ParsedDocument{
		sourceID: raw.SourceID,
		fileName: raw.FileName,
		mimeType: raw.MIMEType,
		chunks:   make([]string, len(chunks)),
		metadata: make(map[string]string, len(metadata)+3),
		err:      errMsg,
	}
	copy(doc.chunks, chunks)
	for k, v := range metadata {
		doc.metadata[k] = v
	}
	doc.metadata[MetaSourceID] = raw.SourceID
	doc.metadata[MetaFileName] = raw.FileName
	doc.metadata[MetaMIMEType] = raw.MIMEType
	return doc
}

// SourceID returns the opaque external identifier.
func (d ParsedDocument) SourceID() string { return d.sourceID }

// FileName returns the original file name.
func (d ParsedDocument) FileName() string { return d.fileName }

// MIMEType returns the declared MIME type.
func (d ParsedDocument) MIMEType() string { return d.mimeType }

// Chunks returns a copy of the text chunks in source order.
func (d ParsedDocument) Chunks() []string {
	out := make([]string, len(d.chunks))
	copy(out, d.chunks)
	return out
}

// ChunkCount returns the number of chunks.
func (d ParsedDocument) ChunkCount() int { return len(d.chunks) }

// Metadata returns a copy of the auxiliary key/value pairs.
func (d ParsedDocument) Metadata() map[string]string {
	out := make(map[string]string, len(d.metadata))
	for k, v := range d.metadata {
		out[k] = v
	}
	return out
}

// Meta returns a single metadata value.
func (d ParsedDocument) Meta(key string) (string, bool) {
	v, ok := d.metadata[key]
	return v, ok
}

// HasError reports whether extraction failed or yielded no usable text.
func (d ParsedDocument) HasError() bool { return d.err != "" }

// ErrorMessage returns the diagnostic string, or "" when there is none.
func (d ParsedDocument) ErrorMessage() string { return d.err }

// FullText joins the chunks with ChunkSeparator.
// It is a projection and is never stored.
func (d ParsedDocument) FullText() string {
	return strings.Join(d.chunks, ChunkSeparator)
}

// IsEmpty returns true if every chunk is blank after trimming whitespace.
func (d ParsedDocument) IsEmpty() bool {
	for _, c := range d.chunks {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parsedDocumentJSON is the wire shape of a ParsedDocument.
type parsedDocumentJSON struct {
	SourceID string            `json:"source_id"`
	FileName string            `json:"file_name"`
	MIMEType string            `json:"mime_type"`
	Chunks   []string          `json:"chunks"`
	Metadata map[string]string `json:"metadata"`
	Error    string            `json:"error,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (d ParsedDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(parsedDocumentJSON{
		SourceID: d.sourceID,
		FileName: d.fileName,
		MIMEType: d.mimeType,
		Chunks:   d.Chunks(),
		Metadata: d.Metadata(),
		Error:    d.err,
	})
}
