package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
	"github.com/custodia-labs/parsely/internal/core/ports/driving"
	"github.com/custodia-labs/parsely/internal/logger"
)

// Ensure ConnectionService implements the interface.
var _ driving.ConnectionService = (*ConnectionService)(nil)

// ConnectionService wraps the connector factory. It is the only place an
// unsupported format is downgraded from an error to a printed notice.
type ConnectionService struct {
	factory driven.ConnectorFactory
	notices io.Writer
}

// NewConnectionService creates a connection service. Unsupported-format
// notices are written to notices; a nil writer discards them.
func NewConnectionService(factory driven.ConnectorFactory, notices io.Writer) *ConnectionService {
	if notices == nil {
		notices = io.Discard
	}
	return &ConnectionService{
		factory: factory,
		notices: notices,
	}
}

// Connect opens a connector for path.
func (s *ConnectionService) Connect(ctx context.Context, path string) (*domain.Connector, bool, error) {
	conn, err := s.factory.Create(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			fmt.Fprintln(s.notices, err.Error())
			logger.Warn("no connector for %s: %v", path, err)
			return nil, false, nil
		}
		return nil, false, err
	}
	return conn, true, nil
}

// Formats lists the formats the factory can open.
func (s *ConnectionService) Formats() []domain.Format {
	infos := s.factory.SupportedFormats()
	formats := make([]domain.Format, 0, len(infos))
	for _, info := range infos {
		formats = append(formats, info.Format)
	}
	return formats
}
