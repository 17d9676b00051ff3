package spelling

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Corpus is a set of known-good words, indexed by length so candidate
// lookups only scan words whose length is within the edit distance.
type Corpus struct {
	words map[string]struct{}
	byLen map[int][]string
}

// NewCorpus builds a corpus from a word list. Words are lower-cased;
// duplicates and blanks are dropped.
func NewCorpus(words []string) *Corpus {
	c := &Corpus{
		words: make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := c.words[w]; ok {
			continue
		}
		c.words[w] = struct{}{}
		c.byLen[len(w)] = append(c.byLen[len(w)], w)
	}
	return c
}

// ReadCorpus reads a corpus from r, one word per line. Blank lines and
// lines starting with '#' are skipped.
func ReadCorpus(r io.Reader) (*Corpus, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return NewCorpus(words), nil
}

// Contains reports whether the lower-cased word is in the corpus.
func (c *Corpus) Contains(word string) bool {
	_, ok := c.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words in the corpus.
func (c *Corpus) Len() int {
	return len(c.words)
}
