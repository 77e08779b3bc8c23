package domain

import (
	"fmt"
	"time"
)

// Default settings values.
const (
	DefaultDataDir       = "."
	DefaultLastName      = "Liar"
	DefaultWatchDebounce = 300 * time.Millisecond
)

// DataSettings locates the sample files the demo reads.
type DataSettings struct {
	// Dir holds person.xml, donut.json and person.sq3.
	Dir string
}

// ReportSettings holds report filter configuration.
type ReportSettings struct {
	// LastName filters persons by their lastName element.
	LastName string
}

// WatchSettings holds file watcher configuration.
type WatchSettings struct {
	// Debounce is how long a file must be quiet before the report reruns.
	Debounce time.Duration
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Data   DataSettings
	Report ReportSettings
	Watch  WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Data:   DataSettings{Dir: DefaultDataDir},
		Report: ReportSettings{LastName: DefaultLastName},
		Watch:  WatchSettings{Debounce: DefaultWatchDebounce},
	}
}

// Validate checks that settings values are usable.
func (s AppSettings) Validate() error {
	if s.Data.Dir == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidInput)
	}
	if s.Watch.Debounce <= 0 {
		return fmt.Errorf("%w: watch debounce must be positive, got %s", ErrInvalidInput, s.Watch.Debounce)
	}
	return nil
}
