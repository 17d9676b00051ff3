package steps

import "regexp"

var currencyGap = regexp.MustCompile(`([£€$])\s*(\d)`)

// RemoveWhitespaceCurrency collapses whitespace between a currency symbol
// (£, € or $) and an immediately following digit, e.g. "$ 5" becomes "$5".
// Currency symbols not followed by a digit are left alone.
func RemoveWhitespaceCurrency(batch []string) []string {
	return apply(batch, func(doc string) string {
		return currencyGap.ReplaceAllString(doc, "$1$2")
	})
}
