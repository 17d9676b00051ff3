package steps

import (
	"strings"
	"testing"
)

// fields collapses whitespace so tests are not sensitive to the exact
// number of spaces between joined text nodes.
func fields(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestRemoveHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold_tag", "check <b>NOW</b> please", "check NOW please"},
		{"nested_tags", "<div><p>hello <em>there</em></p></div>", "hello there"},
		{"comment_discarded", "before <!-- hidden --> after", "before after"},
		{"attributes_discarded", `<a href="http://x.com">link text</a>`, "link text"},
		{"plain_text", "no markup at all", "no markup at all"},
		{"malformed", "<b>unclosed and <i>nested", "unclosed and nested"},
		{"adjacent_elements", "<p>first</p><p>second</p>", "first second"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveHTML([]string{tt.input})
			if fields(got[0]) != tt.want {
				t.Errorf("RemoveHTML(%q) = %q, want %q", tt.input, fields(got[0]), tt.want)
			}
			if strings.ContainsAny(got[0], "<>") {
				t.Errorf("residual markup in %q", got[0])
			}
		})
	}
}

func TestRemoveHTML_PreservesOrder(t *testing.T) {
	in := []string{"<b>one</b>", "two", "<i>three</i>"}
	want := []string{"one", "two", "three"}
	got := RemoveHTML(in)
	for i := range want {
		if fields(got[i]) != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}
