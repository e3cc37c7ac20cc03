package readme

import (
	"strings"
)

// TOCTitle is the heading of the table of contents.
const TOCTitle = "Table of Contents"

// Document is the ordered set of candidate sections framed by an
// unconditional title/overview and license.
type Document struct {
	Title    string
	Overview string
	// Sections are in canonical order; excluded ones are filtered by Entries.
	Sections []Section
	License  Section
	// Footer is appended verbatim after the license.
	Footer string
}

// Entry is an included section paired with its anchor.
type Entry struct {
	Section
	Anchor string
}

// Entries returns the included sections in order, followed by the license,
// each with a unique anchor. It is the single source for both the table of
// contents and the body.
func (d Document) Entries() []Entry {
	anchors := anchorSet{}
	anchors.unique(d.Title)
	anchors.unique(TOCTitle)

	var entries []Entry
	for _, s := range d.Sections {
		if !s.Included() {
			continue
		}
		entries = append(entries, Entry{Section: s, Anchor: anchors.unique(s.Title)})
	}
	return append(entries, Entry{Section: d.License, Anchor: anchors.unique(d.License.Title)})
}

// Render produces the final markdown text.
func (d Document) Render() string {
	entries := d.Entries()

	var b strings.Builder
	b.WriteString("# " + d.Title + "\n\n")
	b.WriteString(strings.TrimSpace(d.Overview) + "\n\n")

	b.WriteString("## " + TOCTitle + "\n\n")
	for _, e := range entries {
		b.WriteString("- [" + escapeLinkText(e.Title) + "](#" + e.Anchor + ")\n")
	}
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString("## " + e.Title + "\n\n")
		b.WriteString(strings.TrimSpace(e.Body) + "\n\n")
	}
	if d.Footer != "" {
		b.WriteString(d.Footer + "\n")
	}
	return b.String()
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}
