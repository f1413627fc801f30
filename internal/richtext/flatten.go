// Package richtext collapses stored rich-text fragments into plain text for
// measurement and layout. Authoring tools save descriptions and notes as
// HTML or markdown; the page model only ever sees flat paragraphs separated
// by newlines.
package richtext

import (
	"regexp"
	"strings"

	xhtml "golang.org/x/net/html"
)

var tagPattern = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)

// Flatten converts a stored rich-text field to plain paragraphs. HTML
// fragments are tag-stripped, anything else goes through the markdown
// flattener, which leaves plain prose untouched.
func Flatten(s string) string {
	if s == "" {
		return ""
	}
	if tagPattern.MatchString(s) {
		return FlattenHTML(s)
	}
	return FlattenMarkdown(s)
}

// blockTags are elements whose boundaries become paragraph breaks.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "table": true, "blockquote": true, "section": true,
}

// FlattenHTML parses s as an HTML fragment and returns its text content:
// tags stripped, entities decoded, block boundaries as newlines, whitespace
// collapsed. List items keep a plain dash marker.
func FlattenHTML(s string) string {
	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		// Parse only fails on reader errors, which strings.Reader never
		// produces; fall back to the raw text to be safe.
		return collapseLines(s)
	}

	var sb strings.Builder
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n == nil {
			return
		}
		switch n.Type {
		case xhtml.TextNode:
			sb.WriteString(n.Data)
		case xhtml.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if blockTags[n.Data] {
				sb.WriteByte('\n')
				if n.Data == "li" {
					sb.WriteString("- ")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == xhtml.ElementNode && blockTags[n.Data] {
			sb.WriteByte('\n')
		}
	}
	walk(doc)

	return collapseLines(sb.String())
}

// collapseLines normalizes whitespace within each line and drops blank
// lines, returning paragraphs joined by single newlines.
func collapseLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
