package steps

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReplaceSubstring replaces every occurrence of old with replacement. When
// an occurrence sits at the very start of a document, or immediately after
// sentence-ending punctuation, the replacement's first letter is upper-cased
// so the sentence still reads correctly.
func ReplaceSubstring(batch []string, old, replacement string) ([]string, error) {
	if old == "" {
		return nil, invalidArgf("str_to_replace must not be empty")
	}
	capitalized := capitalize(replacement)
	return apply(batch, func(doc string) string {
		var b strings.Builder
		start := 0
		for {
			idx := strings.Index(doc[start:], old)
			if idx < 0 {
				b.WriteString(doc[start:])
				return b.String()
			}
			abs := start + idx
			b.WriteString(doc[start:abs])
			if startsSentence(doc, abs) {
				b.WriteString(capitalized)
			} else {
				b.WriteString(replacement)
			}
			start = abs + len(old)
		}
	}), nil
}

// startsSentence reports whether position i is at the beginning of the
// document or preceded (ignoring whitespace) by sentence-ending punctuation.
func startsSentence(doc string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch doc[j] {
		case ' ', '\t', '\n', '\r':
			continue
		case '.', '!', '?':
			return true
		default:
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
