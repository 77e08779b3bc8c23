// Package memory provides in-memory implementations of driven ports.
// They back tests and runs where no config directory is available.
package memory
