// Package output writes cleaned batches in the formats downstream
// consumers (e.g. an embedding step reading a text column) expect.
package output

import (
	"fmt"
	"io"
)

// Format represents output format types.
type Format string

const (
	FormatText  Format = "text"  // one document per line
	FormatJSON  Format = "json"  // JSON array of strings
	FormatJSONL Format = "jsonl" // one JSON string per line
	FormatCSV   Format = "csv"   // single-column CSV with header
)

// Writer serializes a cleaned batch. Flush must be called once writing is
// done.
type Writer interface {
	// WriteBatch outputs the documents, preserving order.
	WriteBatch(docs []string) error

	// Flush ensures all data is written.
	Flush() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	column string
}

// WithColumn sets the CSV header column name.
func WithColumn(name string) WriterOption {
	return func(c *writerConfig) {
		if name != "" {
			c.column = name
		}
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{column: "clean_text"}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatText:
		return newTextWriter(w), nil
	case FormatJSON:
		return newJSONWriter(w, false), nil
	case FormatJSONL:
		return newJSONWriter(w, true), nil
	case FormatCSV:
		return newCSVWriter(w, cfg.column), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
