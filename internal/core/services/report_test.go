package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/logger"
)

func connect(t *testing.T, path string) *domain.Connector {
	t.Helper()
	conn, err := NewConnectorFactory().Create(context.Background(), path)
	require.NoError(t, err)
	return conn
}

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestReportService_Persons(t *testing.T) {
	svc := NewReportService()
	conn := connect(t, filepath.Join("testdata", "person.xml"))

	liars, err := svc.Persons(conn, "Liar")
	require.NoError(t, err)
	require.Len(t, liars, 2)

	assert.Equal(t, domain.Person{
		FirstName: "Jimy",
		LastName:  "Liar",
		Phones:    []domain.Phone{{Type: "home", Number: "212 555-1234"}},
	}, liars[0])
	assert.Equal(t, "Patty", liars[1].FirstName)
	assert.Equal(t, []domain.Phone{
		{Type: "home", Number: "212 555-1234"},
		{Type: "mobile", Number: "001 452-8819"},
	}, liars[1].Phones)
}

func TestReportService_Persons_SingleMatch(t *testing.T) {
	svc := NewReportService()
	path := writeTestFile(t, "person.xml", `<persons>
  <person><firstName>John</firstName><lastName>Smith</lastName></person>
  <person>
    <firstName>Jimy</firstName>
    <lastName>Liar</lastName>
    <phoneNumbers><number type="home">212 555-1234</number></phoneNumbers>
  </person>
</persons>`)

	liars, err := svc.Persons(connect(t, path), "Liar")
	require.NoError(t, err)
	require.Len(t, liars, 1)
	assert.Equal(t, "Jimy", liars[0].FirstName)
}

func TestReportService_Persons_NoMatch(t *testing.T) {
	svc := NewReportService()

	persons, err := svc.Persons(connect(t, filepath.Join("testdata", "person.xml")), "Nobody")
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestReportService_Persons_MissingFields(t *testing.T) {
	warnings := captureWarnings(t)
	svc := NewReportService()
	path := writeTestFile(t, "person.xml", `<persons>
  <person><lastName>Liar</lastName><phoneNumbers><number>555</number></phoneNumbers></person>
  <person><firstName>Ann</firstName><lastName>Liar</lastName></person>
</persons>`)

	persons, err := svc.Persons(connect(t, path), "Liar")
	require.NoError(t, err)
	require.Len(t, persons, 2)

	assert.Equal(t, domain.MissingValue, persons[0].FirstName)
	assert.Equal(t, []domain.Phone{{Type: domain.MissingValue, Number: "555"}}, persons[0].Phones)
	assert.Empty(t, persons[1].Phones)

	assert.Contains(t, warnings.String(), `missing field "firstName"`)
	assert.Contains(t, warnings.String(), `missing field "@type"`)
	assert.Contains(t, warnings.String(), `missing field "phoneNumbers"`)
}

func TestReportService_Persons_WrongVariant(t *testing.T) {
	svc := NewReportService()

	_, err := svc.Persons(connect(t, filepath.Join("testdata", "donut.json")), "Liar")
	assert.True(t, errors.Is(err, domain.ErrFormatMismatch))
}

func TestReportService_Persons_NilConnector(t *testing.T) {
	_, err := NewReportService().Persons(nil, "Liar")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReportService_Donuts(t *testing.T) {
	svc := NewReportService()
	path := writeTestFile(t, "donut.json",
		`[{"name":"Cake","ppu":0.55,"topping":[{"id":"5001","type":"None"}]}]`)

	donuts, err := svc.Donuts(connect(t, path))
	require.NoError(t, err)
	require.Len(t, donuts, 1)

	assert.Equal(t, domain.Donut{
		Name:     "Cake",
		Price:    "0.55",
		Toppings: []domain.Topping{{ID: "5001", Type: "None"}},
	}, donuts[0])
}

func TestReportService_Donuts_Testdata(t *testing.T) {
	donuts, err := NewReportService().Donuts(connect(t, filepath.Join("testdata", "donut.json")))
	require.NoError(t, err)
	require.Len(t, donuts, 3)

	assert.Equal(t, "Cake", donuts[0].Name)
	assert.Len(t, donuts[0].Toppings, 3)
	assert.Equal(t, "Old Fashioned", donuts[2].Name)
	assert.Equal(t, "0.60", donuts[2].Price)
}

func TestReportService_Donuts_MissingFields(t *testing.T) {
	warnings := captureWarnings(t)
	path := writeTestFile(t, "donut.json", `[{"name":"Plain"},{"ppu":1,"topping":[{"id":"5002"}]},7]`)

	donuts, err := NewReportService().Donuts(connect(t, path))
	require.NoError(t, err)
	require.Len(t, donuts, 3)

	assert.Equal(t, domain.Donut{Name: "Plain", Price: domain.MissingValue}, donuts[0])
	assert.Equal(t, domain.Donut{
		Name:     domain.MissingValue,
		Price:    "1",
		Toppings: []domain.Topping{{ID: "5002", Type: domain.MissingValue}},
	}, donuts[1])
	assert.Equal(t, domain.MissingValue, donuts[2].Name)

	assert.Contains(t, warnings.String(), `missing field "ppu"`)
	assert.Contains(t, warnings.String(), "entry 2 is not an object")
}

func TestReportService_Donuts_ToppingWarningsNameTheTopping(t *testing.T) {
	warnings := captureWarnings(t)
	path := writeTestFile(t, "donut.json",
		`[{"name":"Cake","ppu":0.55,"topping":[{"id":"5001","type":"None"},{"id":"5002"},{"type":"Sugar"}]}]`)

	donuts, err := NewReportService().Donuts(connect(t, path))
	require.NoError(t, err)
	require.Len(t, donuts[0].Toppings, 3)

	assert.Contains(t, warnings.String(), `donut 0 topping 1: missing field "type"`)
	assert.Contains(t, warnings.String(), `donut 0 topping 2: missing field "id"`)
	assert.NotContains(t, warnings.String(), "topping 0:")
}

func TestReportService_Donuts_NotASequence(t *testing.T) {
	path := writeTestFile(t, "donut.json", `{"name":"Cake"}`)

	_, err := NewReportService().Donuts(connect(t, path))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReportService_Donuts_WrongVariant(t *testing.T) {
	_, err := NewReportService().Donuts(connect(t, filepath.Join("testdata", "person.xml")))
	assert.True(t, errors.Is(err, domain.ErrFormatMismatch))
}

func TestReportService_Query(t *testing.T) {
	svc := NewReportService()
	conn := connect(t, filepath.Join("testdata", "person.xml"))

	found, err := svc.Query(conn, "//person/address/city")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "New York", found[0].Text)

	_, err = svc.Query(conn, "//person[")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestReportService_Summarise(t *testing.T) {
	svc := NewReportService()

	tests := []struct {
		name  string
		path  string
		root  string
		items int
	}{
		{"xml", filepath.Join("testdata", "person.xml"), "persons", 3},
		{"json array", filepath.Join("testdata", "donut.json"), "array", 3},
		{"json object", writeTestFile(t, "obj.json", `{"a":1,"b":2}`), "object", 2},
		{"json scalar", writeTestFile(t, "num.json", `42`), "scalar", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := connect(t, tt.path)

			summary, err := svc.Summarise(conn)
			require.NoError(t, err)
			assert.Equal(t, conn.ID, summary.ConnectorID)
			assert.Equal(t, conn.Format, summary.Format)
			assert.Equal(t, tt.root, summary.Root)
			assert.Equal(t, tt.items, summary.Items)
		})
	}
}

func TestReportService_Summarise_NilConnector(t *testing.T) {
	_, err := NewReportService().Summarise(nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
