package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	yamlDoc := `
steps:
  - name: remove_emoji
    attributes:
      replace: true
  - name: remove_symbols
    attributes:
      symbols: ["#", "@"]
      remove_keyword: [true, true]
  - name: fix_whitespace
`
	cfg, err := ParseConfig(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if len(cfg.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(cfg.Steps))
	}
	if cfg.Steps[0].Name != StepRemoveEmoji {
		t.Errorf("step 0 = %q", cfg.Steps[0].Name)
	}
	replace, err := cfg.Steps[0].Attributes.Bool("replace", false)
	if err != nil || !replace {
		t.Errorf("replace attribute = %v, %v", replace, err)
	}
	symbols, err := cfg.Steps[1].Attributes.StringList("symbols")
	if err != nil || len(symbols) != 2 {
		t.Errorf("symbols attribute = %v, %v", symbols, err)
	}
}

func TestParseConfig_Executes(t *testing.T) {
	yamlDoc := `
steps:
  - name: remove_urls
  - name: fix_whitespace
`
	cfg, err := ParseConfig(strings.NewReader(yamlDoc))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	got, err := New().Execute([]string{"see http://t.co/x , ok ?"}, cfg.Steps)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got[0] != "see, ok?" {
		t.Errorf("got %q, want %q", got[0], "see, ok?")
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no_steps", "steps: []"},
		{"missing_name", "steps:\n  - attributes:\n      replace: true"},
		{"unknown_top_level_key", "pipeline:\n  - name: fix_whitespace"},
		{"not_yaml", "steps: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected InvalidConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
