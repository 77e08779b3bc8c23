package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDocument struct {
	format Format
}

func (d stubDocument) Format() Format { return d.format }

func TestNewConnector(t *testing.T) {
	doc := stubDocument{format: FormatJSON}

	conn, err := NewConnector("conn-1", "donut.json", FormatJSON, doc)
	require.NoError(t, err)
	require.NotNil(t, conn)

	assert.Equal(t, "conn-1", conn.ID)
	assert.Equal(t, "donut.json", conn.Path)
	assert.Equal(t, FormatJSON, conn.Format)
	assert.Equal(t, doc, conn.ParsedData())
}

func TestNewConnector_VariantMismatch(t *testing.T) {
	conn, err := NewConnector("conn-1", "person.xml", FormatXML, stubDocument{format: FormatJSON})

	assert.Nil(t, conn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormatMismatch))
}

func TestNewConnector_NilDocument(t *testing.T) {
	conn, err := NewConnector("conn-1", "person.xml", FormatXML, nil)

	assert.Nil(t, conn)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestConnector_ParsedData_NilReceiver(t *testing.T) {
	var conn *Connector
	assert.Nil(t, conn.ParsedData())
}
