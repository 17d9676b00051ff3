package output

import (
	"encoding/csv"
	"io"
)

// csvWriter writes a single-column CSV: a header row followed by one record
// per document.
type csvWriter struct {
	w      *csv.Writer
	column string
	header bool
}

func newCSVWriter(w io.Writer, column string) *csvWriter {
	return &csvWriter{w: csv.NewWriter(w), column: column}
}

func (c *csvWriter) WriteBatch(docs []string) error {
	if !c.header {
		if err := c.w.Write([]string{c.column}); err != nil {
			return err
		}
		c.header = true
	}
	for _, doc := range docs {
		if err := c.w.Write([]string{doc}); err != nil {
			return err
		}
	}
	return nil
}

func (c *csvWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
