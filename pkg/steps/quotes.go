package steps

import "strings"

// curlyQuotes maps Unicode curly quote and double-prime code points to their
// plain ASCII equivalents.
var curlyQuotes = strings.NewReplacer(
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"″", `"`, // double prime
	"‶", `"`, // reversed double prime
)

// ReplaceCurlyQuotes maps curly quotes and double primes to straight ASCII
// quotes; all other characters pass through unchanged.
func ReplaceCurlyQuotes(batch []string) []string {
	return apply(batch, curlyQuotes.Replace)
}
