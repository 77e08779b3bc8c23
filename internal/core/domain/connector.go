package domain

import "fmt"

// Connector is a short-lived, read-only handle owning one parsed Document.
// Its Format always equals the Format of the document it exposes.
type Connector struct {
	// ID uniquely identifies this connector instance.
	ID string

	// Path is the file the document was parsed from.
	Path string

	// Format is the adapter variant that parsed the document.
	Format Format

	doc Document
}

// NewConnector wraps a parsed document. The document's variant must
// match the expected format.
func NewConnector(id, path string, expected Format, doc Document) (*Connector, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document for %s", ErrInvalidInput, path)
	}
	if doc.Format() != expected {
		return nil, fmt.Errorf("%w: %s adapter produced %s document for %s",
			ErrFormatMismatch, expected, doc.Format(), path)
	}
	return &Connector{
		ID:     id,
		Path:   path,
		Format: expected,
		doc:    doc,
	}, nil
}

// ParsedData returns the document owned by the connector.
func (c *Connector) ParsedData() Document {
	if c == nil {
		return nil
	}
	return c.doc
}
