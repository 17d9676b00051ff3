package steps

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// RemoveHTML parses each document as HTML and keeps only the visible text,
// joining text nodes with a single space. Tags, attributes and comments are
// discarded; malformed markup is parsed best-effort. If parsing fails
// outright the tags are stripped with a regex instead.
func RemoveHTML(batch []string) []string {
	return apply(batch, htmlText)
}

func htmlText(doc string) string {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return tagPattern.ReplaceAllString(doc, "")
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode && n.Data != "" {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parsed.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
