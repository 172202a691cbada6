package driven

import (
	"context"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// FileFetcher retrieves the bytes and declared type of a file.
// Fetchers live outside the parser: they feed it RawFile values.
type FileFetcher interface {
	// Name returns the fetcher identifier (e.g. "filesystem", "google_drive").
	Name() string

	// Fetch retrieves the file identified by id.
	// Returns domain.ErrNotFound if the file does not exist and
	// domain.ErrFileTooLarge if it exceeds the configured limit.
	Fetch(ctx context.Context, id string) (domain.RawFile, error)
}
