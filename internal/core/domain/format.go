package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies which adapter parsed a document.
type Format string

// Supported formats. FormatUnknown is never attached to a connector.
const (
	FormatUnknown Format = ""
	FormatJSON    Format = "json"
	FormatXML     Format = "xml"
)

// Formats returns every supported format in dispatch order.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML}
}

// IsValid returns true if the format is recognised.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatXML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension, with leading dot, for the format.
func (f Format) Extension() string {
	if !f.IsValid() {
		return ""
	}
	return "." + string(f)
}

// Description returns a human-readable description of the format.
func (f Format) Description() string {
	switch f {
	case FormatJSON:
		return "JSON value tree (objects, arrays, scalars)"
	case FormatXML:
		return "XML element tree with XPath queries"
	default:
		return "Unknown"
	}
}

// ClassifyPath maps a file path to a format by its trailing extension.
// Matching is case-insensitive. Any other extension, or none at all,
// yields an *UnsupportedFormatError carrying the path.
func ClassifyPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Path: path}
	}
}
