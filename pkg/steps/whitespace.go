package steps

import (
	"regexp"
	"strings"
)

var (
	wsRun              = regexp.MustCompile(`\s+`)
	wsBeforePunct      = regexp.MustCompile(`\s+([?.!,:])`)
	wsAfterOpenParen   = regexp.MustCompile(`\(\s+`)
	wsBeforeCloseParen = regexp.MustCompile(`\s+\)`)
	wsAfterOpenQuote   = regexp.MustCompile(`(\s|^)(["'])\s`)
	wsBeforeCloseQuote = regexp.MustCompile(`\s(["'])(\s|$)`)
	missingAfterStop   = regexp.MustCompile(`([?.!])([A-Za-z])`)
	missingAfterComma  = regexp.MustCompile(`,([^\s\d])`)
)

// FixWhitespace normalizes spacing: interior whitespace runs collapse to a
// single space; whitespace before sentence punctuation, just inside
// parentheses and just inside straight quotes is removed; a missing space is
// inserted after sentence-ending punctuation followed by a letter and after
// a comma followed by a non-digit; leading and trailing whitespace is
// trimmed. Applying it to its own output is a no-op.
func FixWhitespace(batch []string) []string {
	return apply(batch, fixWhitespace)
}

func fixWhitespace(doc string) string {
	doc = wsRun.ReplaceAllString(doc, " ")
	doc = wsBeforePunct.ReplaceAllString(doc, "$1")
	doc = wsAfterOpenParen.ReplaceAllString(doc, "(")
	doc = wsBeforeCloseParen.ReplaceAllString(doc, ")")
	doc = wsAfterOpenQuote.ReplaceAllString(doc, "$1$2")
	doc = wsBeforeCloseQuote.ReplaceAllString(doc, "$1$2")
	doc = missingAfterStop.ReplaceAllString(doc, "$1 $2")
	doc = missingAfterComma.ReplaceAllString(doc, ", $1")
	return strings.TrimSpace(doc)
}
