// Package steps provides the individual text transformations that make up
// a cleaning pipeline. Every transformation is a pure function from a batch
// of documents to a new batch of the same length and order: entry i of the
// output derives only from entry i of the input, and the input slice is
// never mutated.
package steps

// apply maps fn over every document in the batch, returning a fresh slice.
func apply(batch []string, fn func(string) string) []string {
	out := make([]string, len(batch))
	for i, doc := range batch {
		out[i] = fn(doc)
	}
	return out
}

// NormalizeBatch coerces a loosely typed input into a batch of documents.
// A single string becomes a one-element batch; []string and []any holding
// only strings pass through as a copy. Anything else is rejected with
// InvalidArgumentError.
func NormalizeBatch(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, invalidArgf("batch element %d is %T, want string", i, e)
			}
			out[i] = s
		}
		return out, nil
	case nil:
		return nil, invalidArgf("text must be a string or a list of strings, got nil")
	default:
		return nil, invalidArgf("text must be a string or a list of strings, got %T", v)
	}
}
