package commands

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input document; tweets are tiny but pasted
// corpora sometimes carry long lines.
const maxLineSize = 1 << 20

// readDocuments loads the input batch. With csvColumn set the input is
// parsed as CSV and the named header column is extracted; otherwise each
// line is one document. path "" or "-" reads stdin.
func readDocuments(path, csvColumn string) ([]string, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if csvColumn != "" {
		return readCSVColumn(r, csvColumn)
	}
	return readLines(r)
}

func readLines(r io.Reader) ([]string, error) {
	var docs []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		docs = append(docs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return docs, nil
}

func readCSVColumn(r io.Reader, column string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	col := -1
	for i, name := range header {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("CSV column %q not found in header %v", column, header)
	}

	var docs []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV record: %w", err)
		}
		if col >= len(record) {
			docs = append(docs, "")
			continue
		}
		docs = append(docs, record[col])
	}
	return docs, nil
}
