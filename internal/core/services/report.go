package services

import (
	"fmt"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driving"
	"github.com/custodia-labs/parsely/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// Element and field names read by the reports.
const (
	tagPerson       = "person"
	tagFirstName    = "firstName"
	tagLastName     = "lastName"
	tagPhoneNumbers = "phoneNumbers"
	attrPhoneType   = "type"

	keyName    = "name"
	keyPrice   = "ppu"
	keyTopping = "topping"
	keyID      = "id"
	keyType    = "type"
)

// ReportService derives records from parsed documents. Absent fields are
// replaced with domain.MissingValue and logged as warnings.
type ReportService struct{}

// NewReportService creates a new report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Persons returns the person elements whose lastName equals lastName.
func (s *ReportService) Persons(conn *domain.Connector, lastName string) ([]domain.Person, error) {
	tree, err := elementTree(conn)
	if err != nil {
		return nil, err
	}

	found, err := tree.FindAll(domain.ElementQuery{Tag: tagPerson, Field: tagLastName, Value: lastName})
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}

	persons := make([]domain.Person, 0, len(found))
	for i, el := range found {
		persons = append(persons, personFrom(conn.Path, i, el))
	}
	return persons, nil
}

func personFrom(path string, index int, el *domain.Element) domain.Person {
	p := domain.Person{
		FirstName: elementText(path, index, el, tagFirstName),
		LastName:  elementText(path, index, el, tagLastName),
	}

	phones := el.Find(tagPhoneNumbers)
	if phones == nil {
		warnMissing(path, tagPerson, index, tagPhoneNumbers)
		return p
	}
	for _, number := range phones.Children {
		kind, ok := number.Attr(attrPhoneType)
		if !ok {
			warnMissing(path, number.Tag, index, "@"+attrPhoneType)
			kind = domain.MissingValue
		}
		p.Phones = append(p.Phones, domain.Phone{Type: kind, Number: number.Text})
	}
	return p
}

func elementText(path string, index int, el *domain.Element, tag string) string {
	text, ok := el.FindText(tag)
	if !ok {
		warnMissing(path, tagPerson, index, tag)
		return domain.MissingValue
	}
	return text
}

// Donuts returns one record per entry of the top-level sequence.
func (s *ReportService) Donuts(conn *domain.Connector) ([]domain.Donut, error) {
	tree, err := valueTree(conn)
	if err != nil {
		return nil, err
	}

	items, ok := domain.AsArray(tree.Root())
	if !ok {
		return nil, fmt.Errorf("%w: top-level value of %s is not a sequence", domain.ErrInvalidInput, conn.Path)
	}

	donuts := make([]domain.Donut, 0, len(items))
	for i, item := range items {
		obj, ok := domain.AsObject(item)
		if !ok {
			logger.Warn("%s: entry %d is not an object", conn.Path, i)
			obj = map[string]any{}
		}
		donuts = append(donuts, donutFrom(conn.Path, i, obj))
	}
	return donuts, nil
}

func donutFrom(path string, index int, obj map[string]any) domain.Donut {
	d := domain.Donut{
		Name:  objectField(path, "donut", index, obj, keyName),
		Price: objectField(path, "donut", index, obj, keyPrice),
	}

	toppings, ok := domain.AsArray(obj[keyTopping])
	if !ok {
		warnMissing(path, "donut", index, keyTopping)
		return d
	}
	record := fmt.Sprintf("donut %d %s", index, keyTopping)
	for j, t := range toppings {
		tobj, ok := domain.AsObject(t)
		if !ok {
			tobj = map[string]any{}
		}
		d.Toppings = append(d.Toppings, domain.Topping{
			ID:   objectField(path, record, j, tobj, keyID),
			Type: objectField(path, record, j, tobj, keyType),
		})
	}
	return d
}

func objectField(path, record string, index int, obj map[string]any, key string) string {
	v, ok := domain.Field(obj, key)
	if !ok {
		warnMissing(path, record, index, key)
		return domain.MissingValue
	}
	return v
}

func warnMissing(path, record string, index int, field string) {
	logger.Warn("%s: %s %d: %v %q", path, record, index, domain.ErrMissingField, field)
}

// Query evaluates an XPath expression against an XML connector.
func (s *ReportService) Query(conn *domain.Connector, expr string) ([]*domain.Element, error) {
	tree, err := elementTree(conn)
	if err != nil {
		return nil, err
	}
	return tree.Query(expr)
}

// Summarise describes a connector's document.
func (s *ReportService) Summarise(conn *domain.Connector) (domain.FileSummary, error) {
	if conn == nil {
		return domain.FileSummary{}, fmt.Errorf("%w: no connector", domain.ErrInvalidInput)
	}

	summary := domain.FileSummary{
		ConnectorID: conn.ID,
		Path:        conn.Path,
		Format:      conn.Format,
	}

	switch doc := conn.ParsedData().(type) {
	case domain.ElementTree:
		summary.Root = doc.Root().Tag
		summary.Items = len(doc.Root().Children)
	case domain.ValueTree:
		root := doc.Root()
		if arr, ok := domain.AsArray(root); ok {
			summary.Root = "array"
			summary.Items = len(arr)
		} else if obj, ok := domain.AsObject(root); ok {
			summary.Root = "object"
			summary.Items = len(obj)
		} else {
			summary.Root = "scalar"
		}
	default:
		return domain.FileSummary{}, fmt.Errorf("%w: unknown document variant for %s", domain.ErrFormatMismatch, conn.Path)
	}

	return summary, nil
}

func elementTree(conn *domain.Connector) (domain.ElementTree, error) {
	if conn == nil {
		return nil, fmt.Errorf("%w: no connector", domain.ErrInvalidInput)
	}
	tree, ok := conn.ParsedData().(domain.ElementTree)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, need %s", domain.ErrFormatMismatch, conn.Path, conn.Format, domain.FormatXML)
	}
	return tree, nil
}

func valueTree(conn *domain.Connector) (domain.ValueTree, error) {
	if conn == nil {
		return nil, fmt.Errorf("%w: no connector", domain.ErrInvalidInput)
	}
	tree, ok := conn.ParsedData().(domain.ValueTree)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, need %s", domain.ErrFormatMismatch, conn.Path, conn.Format, domain.FormatJSON)
	}
	return tree, nil
}
