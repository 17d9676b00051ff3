package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter writes either a JSON array of strings, or one JSON string per
// line (JSONL).
type jsonWriter struct {
	w     *bufio.Writer
	lines bool
}

func newJSONWriter(w io.Writer, lines bool) *jsonWriter {
	return &jsonWriter{w: bufio.NewWriter(w), lines: lines}
}

func (j *jsonWriter) WriteBatch(docs []string) error {
	if j.lines {
		enc := json.NewEncoder(j.w)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	if _, err := j.w.Write(data); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

func (j *jsonWriter) Flush() error {
	return j.w.Flush()
}
