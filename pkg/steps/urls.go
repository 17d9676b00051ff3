package steps

import (
	"net/url"
	"strings"
)

// RemoveURLs drops whitespace-delimited tokens that parse as absolute URLs
// and rejoins the surviving tokens with single spaces. A token counts as a
// URL only when it has both a scheme and a host, so bare domains like
// "example.com" and relative paths are kept.
func RemoveURLs(batch []string) []string {
	return apply(batch, func(doc string) string {
		words := strings.Fields(doc)
		kept := make([]string, 0, len(words))
		for _, w := range words {
			if !isURL(w) {
				kept = append(kept, w)
			}
		}
		return strings.Join(kept, " ")
	})
}

func isURL(word string) bool {
	u, err := url.Parse(word)
	return err == nil && u.Scheme != "" && u.Host != ""
}
