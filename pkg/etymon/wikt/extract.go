package wikt

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Section is one etymology section extracted from a rendered page.
type Section struct {
	Heading string
	Body    string
}

// etymologyHeading matches heading text that names an etymology
// section. The word-boundary test means "Etymology 1" matches while
// "Etymological" does not; a literal "Pseudo-Etymology" still matches
// since a hyphen is a boundary.
var etymologyHeading = regexp.MustCompile(`(?i)\bEtymology\b`)

// headingLevel returns 2..4 for h2/h3/h4 element nodes, 0 otherwise.
func headingLevel(n *html.Node) int {
	if n.Type != html.ElementNode {
		return 0
	}
	switch n.Data {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}

// contentBlock reports whether n is a block kind whose text belongs to
// a section body: paragraph, ordered/unordered list, definition list.
func contentBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "p", "ul", "ol", "dl":
		return true
	}
	return false
}

// ExtractEtymologySections parses rendered page HTML and returns every
// etymology section in document order. For each h2/h3/h4 heading whose
// text matches, the following sibling p/ul/ol/dl blocks are collected
// until the next heading of equal or lower level; their texts are
// joined with blank lines. Headings with no qualifying trailing blocks
// contribute nothing.
func ExtractEtymologySections(pageHTML string) ([]Section, error) {
	root, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	var sections []Section
	for _, h := range findHeadings(root) {
		heading := nodeText(h)
		if !etymologyHeading.MatchString(heading) {
			continue
		}

		level := headingLevel(h)
		var texts []string
		for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
			if lvl := headingLevel(sib); lvl != 0 && lvl <= level {
				break
			}
			if contentBlock(sib) {
				if text := nodeText(sib); text != "" {
					texts = append(texts, text)
				}
			}
		}

		if len(texts) > 0 {
			sections = append(sections, Section{
				Heading: heading,
				Body:    strings.Join(texts, "\n\n"),
			})
		}
	}
	return sections, nil
}

// findHeadings collects all h2/h3/h4 nodes in document order.
func findHeadings(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if headingLevel(n) != 0 {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// nodeText flattens a node's text content: each text fragment is
// trimmed, empties are dropped, and the rest are joined with single
// spaces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
