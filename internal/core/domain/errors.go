package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no extractor is registered for a format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidChunkConfig indicates chunk size and overlap are inconsistent.
	// Chunk size must be positive and overlap must be in [0, chunk size).
	ErrInvalidChunkConfig = errors.New("invalid chunk configuration")

	// ErrFileTooLarge indicates a fetched file exceeds the configured limit.
	ErrFileTooLarge = errors.New("file too large")
)
