// Package pipeline executes configurable text-cleaning pipelines. A pipeline
// is an ordered list of step descriptors; each descriptor names a
// transformation in a registry and carries its options. Steps are applied
// left to right, the output of one feeding the next, and the result is
// exactly reproducible for a fixed batch and configuration.
package pipeline

import (
	"github.com/sourcegraph/conc/iter"

	"github.com/jmylchreest/scrub/internal/logger"
	"github.com/jmylchreest/scrub/pkg/steps"
)

// Step is a single descriptor in a pipeline: the name of a registered
// transformation plus its options.
type Step struct {
	Name       string     `yaml:"name" json:"name" validate:"required"`
	Attributes Attributes `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// DefaultPipeline returns the step sequence applied when the caller supplies
// none: demojize, drop URLs, strip HTML, drop hashtags and mentions with
// their keywords, straighten quotes, close currency gaps, fix whitespace.
func DefaultPipeline() []Step {
	return []Step{
		{Name: StepRemoveEmoji, Attributes: Attributes{"replace": true}},
		{Name: StepRemoveURLs},
		{Name: StepRemoveHTML},
		{Name: StepRemoveSymbols, Attributes: Attributes{
			"symbols":        []string{"#", "@"},
			"remove_keyword": []bool{true, true},
		}},
		{Name: StepReplaceCurlyQuotes},
		{Name: StepRemoveWhitespaceCurrency},
		{Name: StepFixWhitespace},
	}
}

// Executor resolves step descriptors against a registry and applies them to
// batches. The zero value is not usable; construct with New.
type Executor struct {
	registry    *Registry
	verbose     bool
	parallelism int
}

// Option configures an Executor.
type Option func(*Executor)

// WithRegistry injects a custom step registry.
func WithRegistry(r *Registry) Option {
	return func(e *Executor) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithVerbose enables one trace record per executed step.
func WithVerbose(v bool) Option {
	return func(e *Executor) {
		e.verbose = v
	}
}

// WithParallelism sets the number of goroutines used to map the step
// sequence over the batch. Values below 2 keep execution sequential.
func WithParallelism(n int) Option {
	return func(e *Executor) {
		if n > 1 {
			e.parallelism = n
		}
	}
}

// New creates an Executor with the built-in registry and sequential
// execution unless configured otherwise.
func New(opts ...Option) *Executor {
	e := &Executor{
		registry:    NewRegistry(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the executor's step registry.
func (e *Executor) Registry() *Registry {
	return e.registry
}

type resolvedStep struct {
	name  string
	fn    Func
	attrs Attributes
}

// Execute applies the pipeline to the batch and returns the cleaned batch,
// same length and order. A nil pipeline selects DefaultPipeline; an empty
// one returns an untouched copy of the input. Resolution failures surface as
// UnknownStepError, option failures as steps.InvalidArgumentError; any
// failure aborts the whole call with no partial result.
func (e *Executor) Execute(batch []string, pl []Step) ([]string, error) {
	if pl == nil {
		pl = DefaultPipeline()
	}

	resolved := make([]resolvedStep, len(pl))
	for i, step := range pl {
		fn, err := e.registry.Resolve(step.Name)
		if err != nil {
			return nil, err
		}
		resolved[i] = resolvedStep{name: step.Name, fn: fn, attrs: step.Attributes}
		if e.verbose {
			if len(step.Attributes) > 0 {
				logger.Info("applying step", "step", step.Name, "attributes", map[string]any(step.Attributes))
			} else {
				logger.Info("applying step", "step", step.Name)
			}
		}
	}

	if e.parallelism > 1 && len(batch) > 1 {
		return e.runChunked(batch, resolved)
	}
	return run(batch, resolved)
}

// Clean is the loose boundary used by dynamic callers (CLI, config files).
// input may be a single string or a list of strings; config may be nil (use
// the default pipeline), a single step descriptor, or a list of descriptors.
// Other shapes fail with steps.InvalidArgumentError or InvalidConfigError.
func (e *Executor) Clean(input any, config any) ([]string, error) {
	batch, err := steps.NormalizeBatch(input)
	if err != nil {
		return nil, err
	}
	pl, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}
	return e.Execute(batch, pl)
}

// run applies the resolved steps sequentially over one batch.
func run(batch []string, resolved []resolvedStep) ([]string, error) {
	out := make([]string, len(batch))
	copy(out, batch)
	for _, step := range resolved {
		next, err := step.fn(out, step.attrs)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// runChunked splits the batch into contiguous chunks and runs the full step
// sequence on each chunk concurrently. Every step is a per-document map, so
// chunking preserves both semantics and order; results are rejoined in the
// original position.
func (e *Executor) runChunked(batch []string, resolved []resolvedStep) ([]string, error) {
	n := e.parallelism
	if n > len(batch) {
		n = len(batch)
	}
	size := (len(batch) + n - 1) / n
	chunks := make([][]string, 0, n)
	for i := 0; i < len(batch); i += size {
		end := i + size
		if end > len(batch) {
			end = len(batch)
		}
		chunks = append(chunks, batch[i:end])
	}

	m := iter.Mapper[[]string, []string]{MaxGoroutines: n}
	results, err := m.MapErr(chunks, func(chunk *[]string) ([]string, error) {
		return run(*chunk, resolved)
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(batch))
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// normalizeConfig coerces a loosely typed step configuration into a
// pipeline. nil selects the default pipeline (signalled by a nil slice).
func normalizeConfig(v any) ([]Step, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case Step:
		return []Step{t}, nil
	case *Step:
		if t == nil {
			return nil, nil
		}
		return []Step{*t}, nil
	case []Step:
		if t == nil {
			return nil, nil
		}
		out := make([]Step, len(t))
		copy(out, t)
		return out, nil
	case map[string]any:
		step, err := stepFromMap(t)
		if err != nil {
			return nil, err
		}
		return []Step{step}, nil
	case []map[string]any:
		out := make([]Step, len(t))
		for i, m := range t {
			step, err := stepFromMap(m)
			if err != nil {
				return nil, err
			}
			out[i] = step
		}
		return out, nil
	case []any:
		out := make([]Step, len(t))
		for i, e := range t {
			switch et := e.(type) {
			case Step:
				out[i] = et
			case map[string]any:
				step, err := stepFromMap(et)
				if err != nil {
					return nil, err
				}
				out[i] = step
			default:
				return nil, &InvalidConfigError{Reason: "steps must be step descriptors"}
			}
		}
		return out, nil
	default:
		return nil, &InvalidConfigError{Reason: "steps must be nil, a step descriptor, or a list of step descriptors"}
	}
}

func stepFromMap(m map[string]any) (Step, error) {
	name, ok := m["name"].(string)
	if !ok || name == "" {
		return Step{}, &InvalidConfigError{Reason: "step descriptor needs a name"}
	}
	step := Step{Name: name}
	if raw, ok := m["attributes"]; ok && raw != nil {
		attrs, ok := raw.(map[string]any)
		if !ok {
			return Step{}, &InvalidConfigError{Reason: "step attributes must be a mapping"}
		}
		step.Attributes = Attributes(attrs)
	}
	return step, nil
}
