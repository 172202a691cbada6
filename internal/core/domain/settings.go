package domain

import "fmt"

// Default settings values.
const (
	DefaultChunkSize         = 3000
	DefaultChunkOverlap      = 200
	DefaultToolMaxChars      = 3000
	DefaultMaxFileSize       = 100 << 20
	DefaultDriveRequestsPerS = 8
	DefaultDriveBurst        = 10
)

// Settings is the effective application configuration.
type Settings struct {
	Chunker ChunkerSettings
	Output  OutputSettings
	Limits  LimitSettings
	Drive   DriveSettings
}

// ChunkerSettings configures the sliding-window chunker.
type ChunkerSettings struct {
	// ChunkSize is the window length in characters.
	ChunkSize int

	// Overlap is the number of characters shared by adjacent windows.
	Overlap int
}

// OutputSettings configures rendering for tool consumers.
type OutputSettings struct {
	// MaxChars caps the rendered full text. Zero means no limit.
	MaxChars int
}

// LimitSettings bounds the input accepted by fetchers.
type LimitSettings struct {
	// MaxFileSize is the largest file, in bytes, a fetcher will read.
	MaxFileSize int64
}

// DriveSettings configures the Google Drive fetcher.
type DriveSettings struct {
	RequestsPerSecond int
	Burst             int
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Chunker: ChunkerSettings{
			ChunkSize: DefaultChunkSize,
			Overlap:   DefaultChunkOverlap,
		},
		Output: OutputSettings{
			MaxChars: DefaultToolMaxChars,
		},
		Limits: LimitSettings{
			MaxFileSize: DefaultMaxFileSize,
		},
		Drive: DriveSettings{
			RequestsPerSecond: DefaultDriveRequestsPerS,
			Burst:             DefaultDriveBurst,
		},
	}
}

// Validate checks that the settings describe a usable configuration.
func (s Settings) Validate() error {
	if s.Chunker.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidChunkConfig)
	}
	if s.Chunker.Overlap < 0 || s.Chunker.Overlap >= s.Chunker.ChunkSize {
		return fmt.Errorf("%w: overlap must be at least 0 and less than chunk size", ErrInvalidChunkConfig)
	}
	if s.Output.MaxChars < 0 {
		return fmt.Errorf("%w: max chars must not be negative", ErrInvalidInput)
	}
	if s.Limits.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max file size must be positive", ErrInvalidInput)
	}
	if s.Drive.RequestsPerSecond <= 0 || s.Drive.Burst <= 0 {
		return fmt.Errorf("%w: drive rate limits must be positive", ErrInvalidInput)
	}
	return nil
}
