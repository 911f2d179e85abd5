package driving

import "github.com/custodia-labs/vecalc/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Set validates and persists a single setting given as text.
	Set(key, value string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Keys lists the settable keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
