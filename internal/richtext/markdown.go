package richtext

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FlattenMarkdown parses s as markdown and returns the plain text: one line
// per block, emphasis and links collapsed to their text, list items with
// dash or number markers. Plain prose passes through unchanged apart from
// whitespace normalization.
func FlattenMarkdown(s string) string {
	md := goldmark.New()
	src := []byte(s)
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	flattenBlocks(doc, src, &lines)
	return strings.Join(lines, "\n")
}

func flattenBlocks(node ast.Node, source []byte, lines *[]string) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			appendLine(lines, inlineText(n, source))
		case *ast.Paragraph:
			appendLine(lines, inlineText(n, source))
		case *ast.TextBlock:
			appendLine(lines, inlineText(n, source))
		case *ast.List:
			flattenList(n, source, lines)
		case *ast.Blockquote:
			flattenBlocks(n, source, lines)
		case *ast.FencedCodeBlock:
			flattenCodeLines(n, source, lines)
		case *ast.CodeBlock:
			flattenCodeLines(n, source, lines)
		case *ast.ThematicBreak:
			// no textual content
		default:
			appendLine(lines, string(child.Text(source)))
		}
	}
}

func flattenList(list *ast.List, source []byte, lines *[]string) {
	num := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		var parts []string
		var nested []*ast.List
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, sub)
				continue
			}
			if t := inlineText(c, source); t != "" {
				parts = append(parts, t)
			}
		}
		appendLine(lines, marker+strings.Join(parts, " "))
		for _, sub := range nested {
			flattenList(sub, source, lines)
		}
	}
}

func flattenCodeLines(n ast.Node, source []byte, lines *[]string) {
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		appendLine(lines, string(seg.Value(source)))
	}
}

// inlineText concatenates the inline content of a block node, folding soft
// and hard line breaks into spaces.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.AutoLink:
			sb.Write(t.URL(source))
		default:
			sb.WriteString(string(c.Text(source)))
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func appendLine(lines *[]string, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	*lines = append(*lines, s)
}
