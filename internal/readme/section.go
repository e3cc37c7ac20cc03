package readme

import "strings"

// Section is one independently includable block of the document.
type Section struct {
	// Key identifies the section in logs; it is not rendered.
	Key   string
	Title string
	Body  string
}

// Included is the gating predicate: a section is rendered, and indexed in
// the table of contents, iff its body is non-empty after trimming whitespace.
func (s Section) Included() bool {
	return strings.TrimSpace(s.Body) != ""
}
