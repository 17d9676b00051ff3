package steps

import (
	"errors"
	"testing"
)

func TestReplaceSubstring(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		old         string
		replacement string
		want        string
	}{
		{"mid_sentence", "i think the airline was late", "the airline", "it", "i think it was late"},
		{"document_start", "the airline was late", "the airline", "it", "It was late"},
		{"after_period", "we landed. the airline was late", "the airline", "it", "we landed. It was late"},
		{"after_bang", "wow! the airline was late", "the airline", "it", "wow! It was late"},
		{"after_question", "really? the airline was late", "the airline", "it", "really? It was late"},
		{"multiple_occurrences", "bad bad. bad", "bad", "sad", "Sad sad. Sad"},
		{"no_occurrence", "nothing here", "absent", "x", "nothing here"},
		{"empty_replacement", "drop this word", "this ", "", "drop word"},
		{"empty_doc", "", "x", "y", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceSubstring([]string{tt.input}, tt.old, tt.replacement)
			if err != nil {
				t.Fatalf("ReplaceSubstring() error = %v", err)
			}
			if got[0] != tt.want {
				t.Errorf("ReplaceSubstring(%q, %q, %q) = %q, want %q",
					tt.input, tt.old, tt.replacement, got[0], tt.want)
			}
		})
	}
}

func TestReplaceSubstring_EmptyOld(t *testing.T) {
	_, err := ReplaceSubstring([]string{"x"}, "", "y")
	if err == nil {
		t.Fatal("expected error for empty str_to_replace")
	}
	var argErr *InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("expected InvalidArgumentError, got %T", err)
	}
}
