package readme

import (
	"strings"
)

// Collapsible folds content into a <details> element when it has more than
// threshold non-empty lines. Shorter content is returned unchanged.
func Collapsible(summary, content string, threshold int) string {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= threshold {
		return content
	}
	return "<details><summary>" + summary + "</summary>\n\n" + strings.Join(lines, "\n") + "\n\n</details>"
}
