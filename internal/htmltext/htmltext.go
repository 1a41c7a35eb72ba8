// Package htmltext extracts the readable text content of HTML fragments so
// catalog copy is never rendered as raw markup.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"

	"voyagecover.io/recommender-web/internal/format"
)

// Text returns the plain text content of an HTML fragment with whitespace
// collapsed, mirroring DOM textContent semantics. Script and style bodies
// are excluded.
func Text(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		// html.Parse tolerates almost anything; if it does fail, fall back
		// to the raw input with whitespace collapsed.
		return format.CollapseSpace(markup)
	}
	var b strings.Builder
	collect(doc, &b)
	return format.CollapseSpace(b.String())
}

func collect(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "template":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, b)
	}
}
