package pipeline

import (
	"sort"

	"github.com/jmylchreest/scrub/pkg/steps"
)

// Step names accepted by the built-in registry.
const (
	StepRemoveEmoji              = "remove_emoji"
	StepRemoveURLs               = "remove_urls"
	StepRemoveHTML               = "remove_html"
	StepRemoveSymbols            = "remove_symbols"
	StepReplaceCurlyQuotes       = "replace_curly_quotes"
	StepRemoveWhitespaceCurrency = "remove_whitespace_currency"
	StepFixWhitespace            = "fix_whitespace"
	StepReplaceSubstring         = "replace_substring"
)

// Func applies one transformation to a batch, driven by the descriptor's
// attributes. Implementations must preserve batch length and order.
type Func func(batch []string, attrs Attributes) ([]string, error)

// Registry maps step names to transformation functions. It is an explicit
// object owned by the Executor rather than ambient package state, so a
// pipeline can only reach the functions deliberately registered with it.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry populated with the built-in steps.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}

	r.Register(StepRemoveEmoji, func(batch []string, attrs Attributes) ([]string, error) {
		replace, err := attrs.Bool("replace", false)
		if err != nil {
			return nil, err
		}
		return steps.RemoveEmoji(batch, replace), nil
	})
	r.Register(StepRemoveURLs, plain(steps.RemoveURLs))
	r.Register(StepRemoveHTML, plain(steps.RemoveHTML))
	r.Register(StepRemoveSymbols, func(batch []string, attrs Attributes) ([]string, error) {
		symbols, err := attrs.StringList("symbols")
		if err != nil {
			return nil, err
		}
		removeKeyword, err := attrs.BoolList("remove_keyword")
		if err != nil {
			return nil, err
		}
		return steps.RemoveSymbols(batch, symbols, removeKeyword)
	})
	r.Register(StepReplaceCurlyQuotes, plain(steps.ReplaceCurlyQuotes))
	r.Register(StepRemoveWhitespaceCurrency, plain(steps.RemoveWhitespaceCurrency))
	r.Register(StepFixWhitespace, plain(steps.FixWhitespace))
	r.Register(StepReplaceSubstring, func(batch []string, attrs Attributes) ([]string, error) {
		old, err := attrs.String("str_to_replace")
		if err != nil {
			return nil, err
		}
		replacement, err := attrs.String("replacement")
		if err != nil {
			return nil, err
		}
		return steps.ReplaceSubstring(batch, old, replacement)
	})

	return r
}

// Register adds or replaces a step under the given name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Resolve returns the function registered under name, or UnknownStepError.
func (r *Registry) Resolve(name string) (Func, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, &UnknownStepError{Name: name}
	}
	return fn, nil
}

// Names returns the registered step names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// plain adapts a transformation that takes no options.
func plain(fn func([]string) []string) Func {
	return func(batch []string, _ Attributes) ([]string, error) {
		return fn(batch), nil
	}
}
