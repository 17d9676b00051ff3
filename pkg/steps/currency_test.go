package steps

import "testing"

func TestRemoveWhitespaceCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dollar", "Price is $ 5 today", "Price is $5 today"},
		{"pound", "only £  10 left", "only £10 left"},
		{"euro", "€ 99 deal", "€99 deal"},
		{"already_tight", "$5 is fine", "$5 is fine"},
		{"symbol_without_digit", "paid in $ dollars", "paid in $ dollars"},
		{"multiple", "$ 1 and £ 2", "$1 and £2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveWhitespaceCurrency([]string{tt.input})
			if got[0] != tt.want {
				t.Errorf("RemoveWhitespaceCurrency(%q) = %q, want %q", tt.input, got[0], tt.want)
			}
		})
	}
}
