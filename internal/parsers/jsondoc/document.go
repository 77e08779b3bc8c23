// Package jsondoc adapts JSON files into generic value trees.
package jsondoc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
)

// Ensure Document implements the interface.
var _ domain.ValueTree = (*Document)(nil)

// Ensure Build matches the factory's builder signature.
var _ driven.AdapterBuilder = Build

var (
	errEmpty        = errors.New("empty document")
	errTrailingData = errors.New("invalid character after top-level value")
	errInvalidUTF8  = errors.New("invalid UTF-8 encoding")
)

// Document is a fully decoded JSON file. Numeric leaves are json.Number
// so they print exactly as written.
type Document struct {
	path string
	root any
}

// Open reads and decodes the file at path.
func Open(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatJSON, Err: err}
	}

	root, err := decode(data)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatJSON, Err: err}
	}

	return &Document{path: path, root: root}, nil
}

// Build opens path as a domain.Document for the connector factory.
func Build(ctx context.Context, path string) (domain.Document, error) {
	doc, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func decode(data []byte) (any, error) {
	// goccy keeps invalid bytes verbatim in strings; JSON text must be UTF-8.
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmpty
		}
		return nil, err
	}

	// The decoder stops after the first value; anything but whitespace
	// after it makes the file malformed.
	if !json.Valid(data) {
		return nil, errTrailingData
	}

	return root, nil
}

// Format reports the JSON variant.
func (d *Document) Format() domain.Format {
	return domain.FormatJSON
}

// Path returns the file the document was decoded from.
func (d *Document) Path() string {
	return d.path
}

// Root returns the top-level value.
func (d *Document) Root() any {
	return d.root
}

// Items returns the top-level sequence, if the document is one.
func (d *Document) Items() ([]any, bool) {
	return domain.AsArray(d.root)
}
