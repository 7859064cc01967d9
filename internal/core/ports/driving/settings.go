package driving

import "github.com/custodia-labs/wik/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling unset keys
	// with defaults.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for the named key and persists it.
	// Unknown keys and unparsable values return domain.ErrInvalidInput.
	Set(key, value string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// Validate checks that current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
