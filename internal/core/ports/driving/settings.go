package driving

import "github.com/custodia-labs/parsely/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling in defaults.
	Get() (domain.AppSettings, error)

	// Set validates and stores one setting by its config key.
	Set(key, value string) error

	// Keys returns the recognised config keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
