package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
	"github.com/custodia-labs/parsely/internal/logger"
	"github.com/custodia-labs/parsely/internal/parsers/jsondoc"
	"github.com/custodia-labs/parsely/internal/parsers/xmldoc"
)

// Ensure ConnectorFactory implements the interface.
var _ driven.ConnectorFactory = (*ConnectorFactory)(nil)

// ConnectorFactory selects and runs the adapter for a file path.
type ConnectorFactory struct {
	mu       sync.RWMutex
	builders map[domain.Format]driven.AdapterBuilder
	order    []domain.Format
	newID    func() string
}

// NewConnectorFactory creates a factory with the built-in JSON and XML adapters.
func NewConnectorFactory() *ConnectorFactory {
	f := newConnectorFactory()
	f.registerBuiltinAdapters()
	return f
}

func newConnectorFactory() *ConnectorFactory {
	return &ConnectorFactory{
		builders: make(map[domain.Format]driven.AdapterBuilder),
		newID:    uuid.NewString,
	}
}

func (f *ConnectorFactory) registerBuiltinAdapters() {
	f.Register(domain.FormatJSON, jsondoc.Build)
	f.Register(domain.FormatXML, xmldoc.Build)
}

// Register adds or replaces the adapter builder for a format.
func (f *ConnectorFactory) Register(format domain.Format, builder driven.AdapterBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.builders[format]; !exists {
		f.order = append(f.order, format)
	}
	f.builders[format] = builder
}

// Create classifies path and builds a connector with the matching adapter.
// Adapter failures are returned unchanged.
func (f *ConnectorFactory) Create(ctx context.Context, path string) (*domain.Connector, error) {
	format, err := domain.ClassifyPath(path)
	if err != nil {
		return nil, err
	}

	f.mu.RLock()
	builder, ok := f.builders[format]
	f.mu.RUnlock()
	if !ok {
		return nil, &domain.UnsupportedFormatError{Path: path}
	}

	logger.Debug("classified %s as %s", path, format)

	doc, err := builder(ctx, path)
	if err != nil {
		return nil, err
	}

	conn, err := domain.NewConnector(f.newID(), path, format, doc)
	if err != nil {
		return nil, err
	}

	logger.Debug("connector %s opened for %s", conn.ID, path)
	return conn, nil
}

// SupportedFormats returns all registered formats in registration order.
func (f *ConnectorFactory) SupportedFormats() []driven.FormatInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()

	infos := make([]driven.FormatInfo, 0, len(f.order))
	for _, format := range f.order {
		infos = append(infos, driven.FormatInfo{
			Format:     format,
			Extensions: []string{format.Extension()},
		})
	}
	return infos
}
