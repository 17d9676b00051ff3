package steps

import (
	"regexp"
	"strings"
)

// RemoveSymbols deletes platform symbols from every document. Symbols are
// applied in the given order, each over the full batch, before moving to the
// next symbol. When removeKeyword[i] is true the symbol and the immediately
// following run of word characters (plus trailing whitespace) are deleted,
// e.g. a hashtag together with the word it tags; when false only the symbol
// character(s) are deleted and adjacent text is kept.
//
// removeKeyword is broadcast when it holds a single flag; otherwise it must
// match symbols in length.
func RemoveSymbols(batch []string, symbols []string, removeKeyword []bool) ([]string, error) {
	if len(symbols) == 0 {
		return nil, invalidArgf("symbols must be a symbol or a list of symbols")
	}
	for _, s := range symbols {
		if s == "" {
			return nil, invalidArgf("symbols must not contain empty strings")
		}
	}
	if len(removeKeyword) == 1 && len(symbols) > 1 {
		flag := removeKeyword[0]
		removeKeyword = make([]bool, len(symbols))
		for i := range removeKeyword {
			removeKeyword[i] = flag
		}
	}
	if len(removeKeyword) != len(symbols) {
		return nil, invalidArgf("remove_keyword has %d flags for %d symbols", len(removeKeyword), len(symbols))
	}

	type rule struct {
		keyword *regexp.Regexp // nil when only the literal symbol is removed
		literal string
	}
	rules := make([]rule, len(symbols))
	for i, s := range symbols {
		if removeKeyword[i] {
			// \p{L}\p{N}_ mirrors a Unicode-aware \w
			rules[i] = rule{keyword: regexp.MustCompile(regexp.QuoteMeta(s) + `[\p{L}\p{N}_]+\s*`)}
		} else {
			rules[i] = rule{literal: s}
		}
	}

	return apply(batch, func(doc string) string {
		for _, r := range rules {
			if r.keyword != nil {
				doc = strings.TrimSpace(r.keyword.ReplaceAllString(doc, ""))
			} else {
				doc = strings.ReplaceAll(doc, r.literal, "")
			}
		}
		return doc
	}), nil
}
