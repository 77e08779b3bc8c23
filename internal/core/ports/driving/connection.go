package driving

import (
	"context"

	"github.com/custodia-labs/parsely/internal/core/domain"
)

// ConnectionService opens connectors for file paths.
type ConnectionService interface {
	// Connect returns a connector for path. An unsupported extension is
	// reported and yields ok == false with a nil error; any other failure,
	// including *domain.ParseError, is returned unchanged.
	Connect(ctx context.Context, path string) (conn *domain.Connector, ok bool, err error)

	// Formats lists the formats connectors can be opened for.
	Formats() []domain.Format
}
