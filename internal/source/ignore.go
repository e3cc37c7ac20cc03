package source

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/util/sets"
)

// IgnoreFile is the conventional ignore-pattern file at the project root.
const IgnoreFile = ".gitignore"

// LoadIgnore returns the literal, non-comment lines of .gitignore in file order.
// Patterns are not interpreted: consumers compare them against names verbatim.
func LoadIgnore(s *Source) *sets.Ordered[string] {
	patterns := sets.NewOrdered[string]()
	data, found, err := s.ReadOptional(IgnoreFile)
	if err != nil {
		slog.Warn("Ignore file unreadable, continuing without patterns", logfields.File(IgnoreFile), logfields.Error(err))
		return patterns
	}
	if !found {
		return patterns
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns.Add(line)
	}
	return patterns
}
