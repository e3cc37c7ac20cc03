package markdown

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

type edit struct {
	start, end int
	text       string
}

type span struct{ start, end int }

// emptyATX matches an ATX heading without text, which carries no line segment.
var emptyATX = regexp.MustCompile(`^((?:[ ]{0,3}>[ ]?)*[ ]{0,3})(#{1,6})[ \t]*(?:#+[ \t]*)?$`)

// DemoteHeadings rewrites every heading of level upTo or shallower so it sits
// by levels deeper. Setext headings are rewritten as ATX headings. Code block
// content is never touched.
func DemoteHeadings(src string, upTo, by int) string {
	body := []byte(src)
	var edits []edit
	var code []span
	headed := map[int]bool{}

	_ = gmast.Walk(Parse(body), func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if lines := node.Lines(); lines.Len() > 0 {
				headed[lineStart(body, lines.At(0).Start)] = true
			}
			if node.Level <= upTo {
				if e, ok := demote(body, node, by); ok {
					edits = append(edits, e)
				}
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.FencedCodeBlock, *gmast.CodeBlock, *gmast.HTMLBlock:
			if lines := n.Lines(); lines.Len() > 0 {
				code = append(code, span{lines.At(0).Start, lines.At(lines.Len() - 1).Stop})
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	for start := 0; start < len(body); {
		end := lineEnd(body, start)
		line := strings.TrimRight(string(body[start:end]), "\r\n")
		if !headed[start] && !overlaps(code, start, end) {
			if m := emptyATX.FindStringSubmatchIndex(line); m != nil && m[5]-m[4] <= upTo {
				pos := start + m[4]
				edits = append(edits, edit{start: pos, end: pos, text: strings.Repeat("#", by)})
			}
		}
		start = end
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	out := body
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		out = append(out[:e.start:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return string(out)
}

// demote builds the edit for one heading that has text.
func demote(src []byte, h *gmast.Heading, by int) (edit, bool) {
	lines := h.Lines()
	if lines.Len() == 0 {
		return edit{}, false
	}
	first := lines.At(0)
	start := lineStart(src, first.Start)
	if i := bytes.IndexByte(src[start:first.Start], '#'); i >= 0 {
		pos := start + i
		return edit{start: pos, end: pos, text: strings.Repeat("#", by)}, true
	}

	// Setext: the underline is the line after the last text line.
	last := lines.At(lines.Len() - 1)
	underline := lineEnd(src, max(last.Stop-1, last.Start))
	if underline >= len(src) {
		return edit{}, false
	}
	end := lineEnd(src, underline)
	marker := strings.TrimSpace(strings.TrimLeft(string(src[underline:end]), " >"))
	if marker == "" || strings.Trim(marker, "=") != "" && strings.Trim(marker, "-") != "" {
		return edit{}, false
	}

	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
	}
	text := strings.Repeat("#", h.Level+by) + " " + strings.Join(parts, " ")
	if src[end-1] == '\n' {
		text += "\n"
	}
	return edit{start: first.Start, end: end, text: text}, true
}

func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline ending the line at pos.
func lineEnd(src []byte, pos int) int {
	if i := bytes.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(src)
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if s.start < end && start < s.end {
			return true
		}
	}
	return false
}
