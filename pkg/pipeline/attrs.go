package pipeline

import (
	"github.com/spf13/cast"

	"github.com/jmylchreest/scrub/pkg/steps"
)

// Attributes holds the named options of a step descriptor. Values arrive
// loosely typed (from YAML, JSON or caller-built maps) and are coerced at
// the registry boundary, never mid-algorithm.
type Attributes map[string]any

// Bool returns the named attribute as a bool, or def when absent.
func (a Attributes) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, &steps.InvalidArgumentError{Reason: key + " must be a bool"}
	}
	return b, nil
}

// String returns the named attribute as a string. The attribute is required.
func (a Attributes) String(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", &steps.InvalidArgumentError{Reason: key + " is required"}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &steps.InvalidArgumentError{Reason: key + " must be a string"}
	}
	return s, nil
}

// StringList returns the named attribute as a list of strings. A scalar
// string is normalized to a one-element list. The attribute is required.
func (a Attributes) StringList(key string) ([]string, error) {
	v, ok := a[key]
	if !ok {
		return nil, &steps.InvalidArgumentError{Reason: key + " is required"}
	}
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
			s, err := cast.ToStringE(e)
			if err != nil {
				return nil, &steps.InvalidArgumentError{Reason: key + " must be a string or a list of strings"}
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, &steps.InvalidArgumentError{Reason: key + " must be a string or a list of strings"}
	}
}

// BoolList returns the named attribute as a list of bools. A scalar bool is
// normalized to a one-element list; the caller broadcasts it as needed. The
// attribute is required.
func (a Attributes) BoolList(key string) ([]bool, error) {
	v, ok := a[key]
	if !ok {
		return nil, &steps.InvalidArgumentError{Reason: key + " is required"}
	}
	switch t := v.(type) {
	case bool:
		return []bool{t}, nil
	case []bool:
		out := make([]bool, len(t))
		copy(out, t)
		return out, nil
	case []any:
		out := make([]bool, len(t))
		for i, e := range t {
			b, ok := e.(bool)
			if !ok {
				return nil, &steps.InvalidArgumentError{Reason: key + " must be a bool or a list of bools"}
			}
			out[i] = b
		}
		return out, nil
	default:
		return nil, &steps.InvalidArgumentError{Reason: key + " must be a bool or a list of bools"}
	}
}
