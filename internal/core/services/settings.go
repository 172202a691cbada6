package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyChunkSize         = "chunker.chunk_size"
	KeyChunkOverlap      = "chunker.overlap"
	KeyOutputMaxChars    = "output.max_chars"
	KeyMaxFileSize       = "limits.max_file_size"
	KeyDriveRequestsPerS = "drive.requests_per_second"
	KeyDriveBurst        = "drive.burst"
)

var settingKeys = []string{
	KeyChunkSize,
	KeyChunkOverlap,
	KeyOutputMaxChars,
	KeyMaxFileSize,
	KeyDriveRequestsPerS,
	KeyDriveBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Unset keys take their default; a stored negative overlap or zero size
// is reported by Validate rather than silently replaced.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := s.load()
	if s.configStore == nil {
		return &settings, nil
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return &settings, nil
}

// load overlays stored values on the defaults without validating.
func (s *SettingsService) load() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	settings.Chunker.ChunkSize = s.getInt(KeyChunkSize, settings.Chunker.ChunkSize)
	settings.Chunker.Overlap = s.getInt(KeyChunkOverlap, settings.Chunker.Overlap)
	settings.Output.MaxChars = s.getInt(KeyOutputMaxChars, settings.Output.MaxChars)
	settings.Limits.MaxFileSize = int64(s.getInt(KeyMaxFileSize, int(settings.Limits.MaxFileSize)))
	settings.Drive.RequestsPerSecond = s.getInt(KeyDriveRequestsPerS, settings.Drive.RequestsPerSecond)
	settings.Drive.Burst = s.getInt(KeyDriveBurst, settings.Drive.Burst)
	return settings
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("no config store: %w", domain.ErrInvalidInput)
	}

	values := map[string]int{
		KeyChunkSize:         settings.Chunker.ChunkSize,
		KeyChunkOverlap:      settings.Chunker.Overlap,
		KeyOutputMaxChars:    settings.Output.MaxChars,
		KeyMaxFileSize:       int(settings.Limits.MaxFileSize),
		KeyDriveRequestsPerS: settings.Drive.RequestsPerSecond,
		KeyDriveBurst:        settings.Drive.Burst,
	}
	for _, key := range settingKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// SetValue parses an integer value for key, validates the resulting
// settings and persists them.
func (s *SettingsService) SetValue(key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
	}

	settings := s.load()

	switch key {
	case KeyChunkSize:
		settings.Chunker.ChunkSize = n
	case KeyChunkOverlap:
		settings.Chunker.Overlap = n
	case KeyOutputMaxChars:
		settings.Output.MaxChars = n
	case KeyMaxFileSize:
		settings.Limits.MaxFileSize = int64(n)
	case KeyDriveRequestsPerS:
		settings.Drive.RequestsPerSecond = n
	case KeyDriveBurst:
		settings.Drive.Burst = n
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(&settings)
}

// Keys returns the configurable setting keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// getInt returns the stored value for key, or def when the key is unset.
func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}
