package readme

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Anchor derives a heading anchor: the heading is lower-cased and every run
// of characters outside [a-z0-9] becomes a single hyphen.
func Anchor(heading string) string {
	return nonAlnum.ReplaceAllString(cases.Lower(language.Und).String(heading), "-")
}

// anchorSet hands out unique anchors, suffixing repeats with -1, -2, ...
type anchorSet map[string]bool

func (a anchorSet) unique(heading string) string {
	base := Anchor(heading)
	candidate := base
	for n := 1; a[candidate]; n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}
	a[candidate] = true
	return candidate
}
