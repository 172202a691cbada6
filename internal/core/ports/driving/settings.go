package driving

import (
	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: stored values over defaults.
	Get() (*domain.Settings, error)

	// Save validates and persists settings.
	Save(settings *domain.Settings) error

	// SetValue parses and stores a single setting by key.
	SetValue(key, value string) error

	// Keys returns the configurable setting keys.
	Keys() []string
}
