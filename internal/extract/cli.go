package extract

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

// CLICommand is one way to invoke a command-line entry point.
type CLICommand struct {
	Name       string `json:"name" yaml:"name"`
	Invocation string `json:"invocation" yaml:"invocation"`
}

// CLIUsage lists executables declared by package.json bin, Go cmd/ mains,
// Cargo [[bin]] targets and pyproject scripts.
func CLIUsage(src *source.Source, s *signals.Signals) []CLICommand {
	var out []CLICommand
	if m := s.Manifest; m != nil {
		if m.BinPath != "" {
			name := m.Name
			if name == "" || strings.Contains(name, "/") {
				base := path.Base(m.BinPath)
				name = strings.TrimSuffix(base, path.Ext(base))
			}
			out = append(out, CLICommand{Name: name, Invocation: "npx " + name + " [options]"})
		}
		for _, cmd := range m.BinCommands {
			out = append(out, CLICommand{Name: cmd, Invocation: "npx " + cmd + " [options]"})
		}
	}
	if s.GoModule != nil {
		for _, dir := range src.Subdirs("cmd") {
			if src.IsFile(path.Join("cmd", dir, "main.go")) {
				out = append(out, CLICommand{Name: dir, Invocation: "go run ./cmd/" + dir + " [flags]"})
			}
		}
	}
	if s.Cargo != nil {
		for _, bin := range s.Cargo.Bins {
			out = append(out, CLICommand{Name: bin, Invocation: "cargo run --bin " + bin + " -- [options]"})
		}
	}
	if s.PyProject != nil {
		for _, script := range s.PyProject.Scripts {
			out = append(out, CLICommand{Name: script, Invocation: script + " [options]"})
		}
	}
	return out
}
