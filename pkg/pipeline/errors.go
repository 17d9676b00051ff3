package pipeline

// UnknownStepError reports a step descriptor whose name is not present in
// the registry.
type UnknownStepError struct {
	Name string
}

func (e *UnknownStepError) Error() string {
	return "unknown step: " + e.Name
}

// InvalidConfigError reports a step configuration that is neither nil, a
// single step descriptor, nor a list of step descriptors, or a pipeline
// definition that fails validation.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid pipeline config: " + e.Reason
}
