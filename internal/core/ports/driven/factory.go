package driven

import (
	"context"

	"github.com/custodia-labs/parsely/internal/core/domain"
)

// AdapterBuilder reads and fully parses the file at path.
// Read or syntax failures are returned as *domain.ParseError.
type AdapterBuilder func(ctx context.Context, path string) (domain.Document, error)

// FormatInfo describes a registered adapter.
type FormatInfo struct {
	Format     domain.Format
	Extensions []string
}

// ConnectorFactory creates connectors from file paths.
// It maintains a registry of formats and their adapter builders.
type ConnectorFactory interface {
	// Create classifies path by extension and returns a Connector owning
	// the parsed document. Returns *domain.UnsupportedFormatError for
	// unknown extensions; adapter ParseErrors are returned unchanged.
	Create(ctx context.Context, path string) (*domain.Connector, error)

	// Register adds an adapter builder for the given format.
	Register(format domain.Format, builder AdapterBuilder)

	// SupportedFormats returns all registered formats in dispatch order.
	SupportedFormats() []FormatInfo
}
