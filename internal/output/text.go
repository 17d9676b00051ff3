package output

import (
	"bufio"
	"io"
)

// textWriter writes one document per line.
type textWriter struct {
	w *bufio.Writer
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: bufio.NewWriter(w)}
}

func (t *textWriter) WriteBatch(docs []string) error {
	for _, doc := range docs {
		if _, err := t.w.WriteString(doc); err != nil {
			return err
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (t *textWriter) Flush() error {
	return t.w.Flush()
}
