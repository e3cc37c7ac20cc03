package signals

import (
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/source"
)

// RequirementsFile is the conventional pip requirements file.
const RequirementsFile = "requirements.txt"

// Requirements is the parsed content of requirements.txt.
type Requirements struct {
	// Lines are the non-comment lines verbatim (trimmed), in file order.
	Lines []string
	// Names are the lower-cased distribution names, aligned with Lines.
	Names []string
	// Text is the full lower-cased file content.
	Text string
}

// ReadRequirements parses requirements.txt; absent yields (nil, nil).
func ReadRequirements(src *source.Source) (*Requirements, error) {
	data, found, err := src.ReadOptional(RequirementsFile)
	if err != nil || !found {
		return nil, err
	}
	return ParseRequirements(string(data)), nil
}

// ParseRequirements splits requirements text into lines and package names.
func ParseRequirements(text string) *Requirements {
	r := &Requirements{Text: strings.ToLower(text)}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.Lines = append(r.Lines, line)
		r.Names = append(r.Names, requirementName(line))
	}
	return r
}

// Has reports whether a requirement with the given (case-insensitive) name is listed.
func (r *Requirements) Has(name string) bool {
	if r == nil {
		return false
	}
	return contains(r.Names, strings.ToLower(name))
}

func requirementName(line string) string {
	if i := strings.IndexAny(line, "=<>!~;[ @"); i >= 0 {
		line = line[:i]
	}
	return strings.ToLower(strings.TrimSpace(line))
}
