package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
	"github.com/custodia-labs/parsely/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataDir         = "data.dir"
	keyReportLastName  = "report.last_name"
	keyWatchDebounceMS = "watch.debounce_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	if dir := s.configStore.GetString(keyDataDir); dir != "" {
		settings.Data.Dir = dir
	}
	// An explicitly empty last name is a valid filter.
	if _, ok := s.configStore.Get(keyReportLastName); ok {
		settings.Report.LastName = s.configStore.GetString(keyReportLastName)
	}
	if ms := s.configStore.GetInt(keyWatchDebounceMS); ms > 0 {
		settings.Watch.Debounce = time.Duration(ms) * time.Millisecond
	}

	if err := settings.Validate(); err != nil {
		return domain.AppSettings{}, err
	}
	return settings, nil
}

// Set validates and stores one setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyDataDir:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)
	case keyReportLastName:
		return s.configStore.Set(key, value)
	case keyWatchDebounceMS:
		ms, err := strconv.Atoi(value)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, ms)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}
}

// Keys returns the recognised config keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{keyDataDir, keyReportLastName, keyWatchDebounceMS}
	sort.Strings(keys)
	return keys
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
