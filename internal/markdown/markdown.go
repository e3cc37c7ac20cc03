package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func Parse(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

// Links extracts inline links, images and autolinks in document order.
//
// This is an analysis API; it does not attempt to re-render Markdown.
func Links(body []byte) []Link {
	root := Parse(body)
	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination), Text: plainText(node, body)})
		case *gmast.Link:
			// Goldmark resolves reference-style links to a Link node with a Destination.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination), Text: plainText(node, body)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// Headings lists every heading in document order, including headings nested
// in block quotes and list items.
func Headings(body []byte) []Heading {
	var out []Heading
	_ = gmast.Walk(Parse(body), func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		h, ok := n.(*gmast.Heading)
		if !entering || !ok {
			return gmast.WalkContinue, nil
		}
		out = append(out, Heading{Level: h.Level, Text: plainText(h, body)})
		return gmast.WalkSkipChildren, nil
	})
	return out
}

// CodeBlocks lists fenced code blocks in document order, each with the
// heading trail it sits under. Blocks nested in list items and block quotes
// are included; only top-level headings contribute to the trail.
func CodeBlocks(body []byte) []CodeBlock {
	var trail [6]string
	var out []CodeBlock
	_ = gmast.Walk(Parse(body), func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if node.Parent() != nil && node.Parent().Kind() == gmast.KindDocument {
				trail[node.Level-1] = plainText(node, body)
				for i := node.Level; i < len(trail); i++ {
					trail[i] = ""
				}
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.FencedCodeBlock:
			var code strings.Builder
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				code.Write(seg.Value(body))
			}
			var t []string
			for _, h := range trail {
				if h != "" {
					t = append(t, h)
				}
			}
			out = append(out, CodeBlock{
				Lang:  string(node.Language(body)),
				Code:  code.String(),
				Trail: t,
			})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return out
}

// FirstParagraph returns the text up to the first blank line, after skipping
// a single leading heading line. It returns "" when the first block is
// another heading.
func FirstParagraph(body []byte) string {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	i := 0
	skipBlank := func() {
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
	}
	skipBlank()
	if i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), "#") {
		i++
		skipBlank()
	}
	var para []string
	for ; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		para = append(para, lines[i])
	}
	p := strings.TrimSpace(strings.Join(para, "\n"))
	if strings.HasPrefix(p, "#") {
		return ""
	}
	return p
}

// plainText concatenates the text segments below n.
func plainText(n gmast.Node, src []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		case *gmast.AutoLink:
			b.Write(t.URL(src))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
