package readme

import (
	"net/url"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/markdown"
)

// bullets renders one "- item" line per item.
func bullets(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString("- " + it + "\n")
	}
	return b.String()
}

func code(s string) string { return "`" + s + "`" }

func codeAll(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = code(it)
	}
	return out
}

var backtickRun = regexp.MustCompile("`{3,}")

// fence wraps body in a fenced code block longer than any backtick run inside it.
func fence(lang, body string) string {
	n := 3
	for _, run := range backtickRun.FindAllString(body, -1) {
		if len(run) >= n {
			n = len(run) + 1
		}
	}
	f := strings.Repeat("`", n)
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return f + lang + "\n" + body + f
}

// relLink turns a root-relative path into a link destination.
func relLink(p string) string {
	u := url.URL{Path: "./" + p}
	return u.EscapedPath()
}

// demoteHeadings shifts level 1 and 2 headings, ATX or setext, down two
// levels so user content cannot introduce unindexed top-level headings.
func demoteHeadings(content string) string {
	return markdown.DemoteHeadings(content, 2, 2)
}
