package classify

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// DefaultEntry is reported when no entry point can be inferred.
const DefaultEntry = "src/index.js"

// entryRules are tried in order; the first non-empty result wins.
var entryRules = []func(*signals.Signals) string{
	firstRootName("app.html", "index.html", "main.py", "extension.ts"),
	func(s *signals.Signals) string {
		if s.HasFile("src/extension.ts") {
			return "src/extension.ts"
		}
		return ""
	},
	func(s *signals.Signals) string {
		if s.Manifest != nil {
			return s.Manifest.Main
		}
		return ""
	},
	firstRootName("main.go"),
	func(s *signals.Signals) string {
		for _, f := range filesUnder(s, "cmd") {
			if strings.Count(f, "/") == 2 && path.Base(f) == "main.go" {
				return f
			}
		}
		return ""
	},
	func(s *signals.Signals) string {
		if s.HasFile("src/main.rs") {
			return "src/main.rs"
		}
		return ""
	},
	func(s *signals.Signals) string {
		for _, name := range s.RootNames {
			if strings.HasSuffix(name, ".js") || strings.HasSuffix(name, ".ts") {
				return name
			}
		}
		return ""
	},
}

// MainEntry infers the project's main entry file, defaulting to DefaultEntry.
func MainEntry(s *signals.Signals) string {
	for _, rule := range entryRules {
		if e := rule(s); e != "" {
			return e
		}
	}
	return DefaultEntry
}

func firstRootName(names ...string) func(*signals.Signals) string {
	return func(s *signals.Signals) string {
		for _, n := range names {
			if s.HasRootName(n) {
				return n
			}
		}
		return ""
	}
}
