package driving

import "github.com/custodia-labs/docrec/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling gaps with defaults.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetValue parses raw for the setting named key and persists it.
	// Unknown keys fail with domain.ErrNotFound, unparsable values with domain.ErrInvalidInput.
	SetValue(key, raw string) error

	// Keys returns every recognised setting key in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
