package steps

import (
	"strings"
	"testing"

	"github.com/forPelevin/gomoji"
)

func TestRemoveEmoji_Delete(t *testing.T) {
	got := RemoveEmoji([]string{"love this 😍 so much 🔥", "no emoji here"}, false)

	if len(got) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(got))
	}
	if gomoji.ContainsEmoji(got[0]) {
		t.Errorf("emoji glyphs survived: %q", got[0])
	}
	if !strings.Contains(got[0], "love this") || !strings.Contains(got[0], "so much") {
		t.Errorf("non-emoji text was damaged: %q", got[0])
	}
	if got[1] != "no emoji here" {
		t.Errorf("emoji-free document changed: %q", got[1])
	}
}

func TestRemoveEmoji_Replace(t *testing.T) {
	got := RemoveEmoji([]string{"great flight 😍"}, true)

	if gomoji.ContainsEmoji(got[0]) {
		t.Errorf("emoji glyphs survived: %q", got[0])
	}
	// The glyph becomes a space-delimited description, so the document must
	// gain words rather than just losing the glyph.
	if len(strings.Fields(got[0])) <= 2 {
		t.Errorf("expected a textual description in place of the emoji: %q", got[0])
	}
	if !strings.Contains(got[0], "heart") {
		t.Errorf("expected description of the heart-eyes emoji: %q", got[0])
	}
}

func TestRemoveEmoji_PreservesOrder(t *testing.T) {
	in := []string{"a 😀", "b", "c 🔥"}
	got := RemoveEmoji(in, false)
	if len(got) != len(in) {
		t.Fatalf("length changed: %d != %d", len(got), len(in))
	}
	for i, doc := range got {
		if !strings.HasPrefix(doc, in[i][:1]) {
			t.Errorf("entry %d no longer derives from input entry %d: %q", i, i, doc)
		}
	}
}
