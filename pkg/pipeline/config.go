package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is a pipeline definition loaded from YAML:
//
//	steps:
//	  - name: remove_emoji
//	    attributes:
//	      replace: true
//	  - name: fix_whitespace
type Config struct {
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// ParseConfig decodes and validates a YAML pipeline definition.
func ParseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &InvalidConfigError{Reason: "empty pipeline definition"}
		}
		return nil, &InvalidConfigError{Reason: err.Error()}
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, &InvalidConfigError{Reason: err.Error()}
	}
	return &cfg, nil
}

// LoadConfig reads a YAML pipeline definition from disk.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pipeline config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}
