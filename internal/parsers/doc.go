// Package parsers provides the file-format adapters behind the connector
// factory. Each adapter reads a whole file, parses it into a domain.Document
// variant and reports every read or syntax failure as *domain.ParseError.
//
// Adapters are registered with the ConnectorFactory at startup:
//
//   - jsondoc: JSON files into a generic value tree
//   - xmldoc: XML files into a queryable element tree
package parsers
