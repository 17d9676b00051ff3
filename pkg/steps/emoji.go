package steps

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// RemoveEmoji strips emoji from every document. When replace is true each
// emoji is substituted with a space-delimited textual description (its slug,
// e.g. " red-heart ") instead of being deleted; non-emoji characters are
// untouched either way.
func RemoveEmoji(batch []string, replace bool) []string {
	return apply(batch, func(doc string) string {
		if !replace {
			return gomoji.RemoveEmojis(doc)
		}
		for _, em := range gomoji.CollectAll(doc) {
			doc = strings.ReplaceAll(doc, em.Character, " "+em.Slug+" ")
		}
		return doc
	})
}
