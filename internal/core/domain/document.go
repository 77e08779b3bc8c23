package domain

import (
	"fmt"
	"strings"
)

// Document is a fully materialised parse result.
// Exactly one variant exists per file and the variant is fixed by the
// adapter that produced it.
type Document interface {
	// Format reports which adapter produced the document.
	Format() Format
}

// ValueTree is a Document decoded from JSON into generic values:
// map[string]any, []any, and scalar leaves.
type ValueTree interface {
	Document

	// Root returns the top-level value.
	Root() any
}

// ElementTree is a Document parsed from XML into elements.
type ElementTree interface {
	Document

	// Root returns the document element.
	Root() *Element

	// FindAll returns every descendant matching q, in document order.
	FindAll(q ElementQuery) ([]*Element, error)

	// Query evaluates an XPath expression and returns the matching
	// elements in document order. The result may be empty.
	Query(expr string) ([]*Element, error)
}

// Attr is a single XML attribute. Attribute order follows the source.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of a parsed XML element tree.
type Element struct {
	// Tag is the local element name.
	Tag string

	// Attrs holds the attributes in source order.
	Attrs []Attr

	// Children holds the child elements in source order.
	Children []*Element

	// Text is the element's own character data, trimmed.
	// Text nested inside child elements is not included.
	Text string
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindText returns the text of the first direct child with the given tag.
func (e *Element) FindText(tag string) (string, bool) {
	c := e.Find(tag)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

// ElementQuery describes a descendant query: every element named Tag
// whose Field equals Value. Field is a child element name, or an
// attribute name prefixed with "@". An empty Field matches every Tag.
type ElementQuery struct {
	Tag   string
	Field string
	Value string
}

// XPath renders the query as an XPath descendant expression.
func (q ElementQuery) XPath() (string, error) {
	if !validName(q.Tag) {
		return "", fmt.Errorf("%w: tag %q", ErrInvalidInput, q.Tag)
	}
	if q.Field == "" {
		return "//" + q.Tag, nil
	}
	if !validName(strings.TrimPrefix(q.Field, "@")) {
		return "", fmt.Errorf("%w: field %q", ErrInvalidInput, q.Field)
	}

	var literal string
	switch {
	case !strings.Contains(q.Value, "'"):
		literal = "'" + q.Value + "'"
	case !strings.Contains(q.Value, `"`):
		literal = `"` + q.Value + `"`
	default:
		return "", fmt.Errorf("%w: value %q mixes quote characters", ErrInvalidInput, q.Value)
	}

	return fmt.Sprintf("//%s[%s=%s]", q.Tag, q.Field, literal), nil
}

// validName accepts plain XML names without axes, predicates or wildcards.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && (r == '-' || r == '.' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
