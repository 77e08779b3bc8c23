package driving

import "github.com/custodia-labs/parsely/internal/core/domain"

// ReportService derives printable records from a connector's document.
type ReportService interface {
	// Persons returns every person element whose lastName equals lastName.
	// Requires an XML connector.
	Persons(conn *domain.Connector, lastName string) ([]domain.Person, error)

	// Donuts returns one record per entry of the top-level sequence.
	// Requires a JSON connector.
	Donuts(conn *domain.Connector) ([]domain.Donut, error)

	// Query evaluates an XPath expression against an XML connector.
	Query(conn *domain.Connector, expr string) ([]*domain.Element, error)

	// Summarise describes the connector's document without interpreting records.
	Summarise(conn *domain.Connector) (domain.FileSummary, error)
}
