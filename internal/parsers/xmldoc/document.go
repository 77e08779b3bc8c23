// Package xmldoc adapts XML files into queryable element trees.
package xmldoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
)

// Ensure Document implements the interface.
var _ domain.ElementTree = (*Document)(nil)

// Ensure Build matches the factory's builder signature.
var _ driven.AdapterBuilder = Build

var (
	errNoRoot        = errors.New("no root element")
	errManyRoots     = errors.New("more than one root element")
	errTextOutside   = errors.New("character data outside the root element")
	errDuplicateAttr = errors.New("duplicate attribute")
)

// Document is a fully parsed XML file.
type Document struct {
	path string
	tree *xmlquery.Node
	root *domain.Element
	// elements maps parsed nodes to their converted elements so query
	// results share identity with the tree returned by Root.
	elements map[*xmlquery.Node]*domain.Element
}

// Open reads and parses the file at path.
func Open(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatXML, Err: err}
	}

	tree, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatXML, Err: err}
	}

	rootNode, err := documentElement(tree)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatXML, Err: err}
	}

	d := &Document{
		path:     path,
		tree:     tree,
		elements: make(map[*xmlquery.Node]*domain.Element),
	}
	d.root, err = d.convert(rootNode)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Format: domain.FormatXML, Err: err}
	}
	return d, nil
}

// Build opens path as a domain.Document for the connector factory.
func Build(ctx context.Context, path string) (domain.Document, error) {
	doc, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// documentElement returns the single top-level element of a parsed tree.
// Only whitespace may appear as text around it.
func documentElement(tree *xmlquery.Node) (*xmlquery.Node, error) {
	var root *xmlquery.Node
	for n := tree.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, errTextOutside
			}
			continue
		case xmlquery.ElementNode:
		default:
			continue
		}
		if root != nil {
			return nil, errManyRoots
		}
		root = n
	}
	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

func (d *Document) convert(n *xmlquery.Node) (*domain.Element, error) {
	el := &domain.Element{Tag: n.Data}
	seen := make(map[string]bool, len(n.Attr))
	for _, a := range n.Attr {
		name := attrName(a)
		if seen[name] {
			return nil, fmt.Errorf("%w %q on <%s>", errDuplicateAttr, name, n.Data)
		}
		seen[name] = true
		el.Attrs = append(el.Attrs, domain.Attr{Name: name, Value: a.Value})
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			child, err := d.convert(c)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(c.Data)
		}
	}
	el.Text = strings.TrimSpace(text.String())

	d.elements[n] = el
	return el, nil
}

func attrName(a xmlquery.Attr) string {
	if a.Name.Space == "" {
		return a.Name.Local
	}
	return a.Name.Space + ":" + a.Name.Local
}

// Format reports the XML variant.
func (d *Document) Format() domain.Format {
	return domain.FormatXML
}

// Path returns the file the document was parsed from.
func (d *Document) Path() string {
	return d.path
}

// Root returns the document element.
func (d *Document) Root() *domain.Element {
	return d.root
}

// Query evaluates an XPath expression from the document node.
// The expression must select nodes; number, string and boolean
// expressions such as count(//person) are rejected with ErrInvalidInput.
// Only element results are returned; text and attribute nodes are dropped.
func (d *Document) Query(expr string) ([]*domain.Element, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: xpath %q: %v", domain.ErrInvalidInput, expr, err)
	}
	if _, ok := compiled.Evaluate(xmlquery.CreateXPathNavigator(d.tree)).(*xpath.NodeIterator); !ok {
		return nil, fmt.Errorf("%w: xpath %q does not select nodes", domain.ErrInvalidInput, expr)
	}

	nodes := xmlquery.QuerySelectorAll(d.tree, compiled)

	result := make([]*domain.Element, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := d.elements[n]; ok {
			result = append(result, el)
		}
	}
	return result, nil
}

// FindAll returns every descendant element matching q.
func (d *Document) FindAll(q domain.ElementQuery) ([]*domain.Element, error) {
	expr, err := q.XPath()
	if err != nil {
		return nil, err
	}
	return d.Query(expr)
}
