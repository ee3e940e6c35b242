package readme

import (
	"strings"

	"golang.org/x/net/html"
)

// textContent renders a markup fragment as readable plain text: block
// elements become line breaks, scripts and styles are dropped, and
// whitespace runs collapse. Used where prose is wanted rather than the
// line-oriented or list-oriented helpers.
func textContent(markup string) string {
	node, err := html.Parse(strings.NewReader(markup))
	if err != nil || node == nil {
		return stripTags(markup)
	}
	var b strings.Builder
	collectText(&b, node)
	return normalizeWhitespace(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript":
			return
		case "br", "p", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "pre":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
