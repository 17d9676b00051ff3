// Package spelling flags tokens that do not appear in a spelling corpus and
// suggests the nearest known word within a bounded edit distance. It is an
// auxiliary annotation step: it reports on a batch without transforming it.
package spelling

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// DefaultDistance is the maximum edit distance used when none is given.
const DefaultDistance = 2

// tokenPattern is a social-media-aware tokenizer: URLs, mentions and
// hashtags survive as single tokens instead of being split on punctuation.
var tokenPattern = regexp.MustCompile(`https?://\S+|@\w+|#\w+|[\p{L}\p{N}]+(?:'[\p{L}]+)?`)

var ordinalPattern = regexp.MustCompile(`^\d+(?:st|nd|rd|th)$`)

// Tokenize splits a document into tokens, keeping mentions, hashtags and
// URLs intact.
func Tokenize(doc string) []string {
	return tokenPattern.FindAllString(doc, -1)
}

// Checker finds likely misspellings against a fixed corpus.
type Checker struct {
	corpus   *Corpus
	distance int
}

// New creates a Checker. distance values below 1 fall back to
// DefaultDistance.
func New(corpus *Corpus, distance int) *Checker {
	if distance < 1 {
		distance = DefaultDistance
	}
	return &Checker{corpus: corpus, distance: distance}
}

// Check tokenizes every document and returns a mapping from unrecognized
// token (lower-cased) to its suggested correction. Mentions, hashtags, URLs,
// non-ASCII tokens, plain numbers and ordinals ("1st") are exempt; unknown
// tokens with no corpus word within the edit distance are omitted.
//
// Suggestions are cached for the duration of one Check call so repeated
// tokens across the batch are only computed once; nothing leaks between
// calls.
func (c *Checker) Check(batch []string) map[string]string {
	suggestions := make(map[string]string)
	cache := make(map[string]string)

	for _, doc := range batch {
		for _, tok := range Tokenize(doc) {
			if exempt(tok) {
				continue
			}
			word := strings.ToLower(tok)
			if c.corpus.Contains(word) {
				continue
			}
			best, seen := cache[word]
			if !seen {
				best = c.suggest(word)
				cache[word] = best
			}
			if best != "" {
				suggestions[word] = best
			}
		}
	}
	return suggestions
}

// suggest returns the closest corpus word within the checker's edit
// distance, or "" when none qualifies. Ties go to the earlier word of the
// shorter length bucket, which is stable for a fixed corpus.
func (c *Checker) suggest(word string) string {
	best := ""
	bestDist := c.distance + 1
	for l := len(word) - c.distance; l <= len(word)+c.distance; l++ {
		if l < 1 {
			continue
		}
		for _, candidate := range c.byLenBucket(l) {
			if d := levenshtein.ComputeDistance(word, candidate); d < bestDist {
				best, bestDist = candidate, d
			}
		}
	}
	return best
}

func (c *Checker) byLenBucket(l int) []string {
	return c.corpus.byLen[l]
}

// exempt reports whether a token is excluded from spell checking.
func exempt(tok string) bool {
	if strings.HasPrefix(tok, "@") || strings.HasPrefix(tok, "#") {
		return true
	}
	if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
		return true
	}
	digits := true
	for _, r := range tok {
		if r > unicode.MaxASCII {
			return true
		}
		if !unicode.IsDigit(r) {
			digits = false
		}
	}
	if digits {
		return true
	}
	return ordinalPattern.MatchString(strings.ToLower(tok))
}
