package classify

import (
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// Project type labels other code refers to.
const (
	TypeUnknown         = "Unknown"
	TypeVSCodeExtension = "VS Code Extension"
	TypeWebApplication  = "Web Application"
	TypeNodeApplication = "Node.js Application"
	TypeCLI             = "Command Line Tool"
)

// ProjectType is the single label chosen for the project.
type ProjectType struct {
	Label string `json:"label" yaml:"label"`
	// Detail refines the label, e.g. the contribution points of an editor extension.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (p ProjectType) String() string {
	if p.Detail == "" {
		return p.Label
	}
	return p.Label + " (" + p.Detail + ")"
}

// typeRules is ordered by precedence: editor extension marker, framework
// dependency, manifest shape, build-tool config, container and CI markers,
// folder conventions, then single marker files.
var typeRules = []Rule[*signals.Signals]{
	{Label: TypeVSCodeExtension, Match: func(s *signals.Signals) bool {
		return s.Manifest != nil && s.Manifest.VSCodeEngine
	}},
	// Next.js projects also depend on react, so next is checked first.
	{Label: "Next.js Web Application", Match: runtimeDep("next")},
	{Label: "NestJS Backend", Match: runtimeDep("nestjs", "@nestjs/core")},
	{Label: "React Web Application", Match: runtimeDep("react", "react-dom")},
	{Label: "Express.js Backend", Match: runtimeDep("express")},
	{Label: "Vite Web Application", Match: runtimeDep("vite")},
	{Label: TypeNodeApplication, Match: func(s *signals.Signals) bool {
		return s.Manifest != nil && strings.HasSuffix(s.Manifest.Main, ".js")
	}},
	{Label: TypeCLI, Match: func(s *signals.Signals) bool { return s.Manifest.HasBin() }},
	{Label: "Go Module", Match: func(s *signals.Signals) bool { return s.GoModule != nil }},
	{Label: "Rust Crate", Match: func(s *signals.Signals) bool { return s.Cargo != nil }},
	{Label: "Python Package", Match: func(s *signals.Signals) bool { return s.PyProject != nil }},
	{Label: "TypeScript Project", Match: rootName("tsconfig.json")},
	{Label: "Webpack Project", Match: rootName("webpack.config.js")},
	{Label: "Gulp Project", Match: rootName("gulpfile.js")},
	{Label: "Dockerized Project", Match: rootName("Dockerfile")},
	{Label: "Project with GitHub Actions/CI", Match: func(s *signals.Signals) bool {
		return len(filesUnder(s, workflowsDir)) > 0
	}},
	{Label: "Web Application (public folder detected)", Match: rootName("public")},
	{Label: "Library/Package (src & test folders)", Match: func(s *signals.Signals) bool {
		return s.HasRootName("src") && s.HasRootName("test")
	}},
	{Label: "Documented Project (docs folder)", Match: rootName("docs")},
	{Label: "VS Code Workspace/Project", Match: func(s *signals.Signals) bool {
		return s.HasFile(".vscode/launch.json") || s.HasFile(".vscode/tasks.json")
	}},
	{Label: "Python Application", Match: rootName("requirements.txt", "main.py")},
	{Label: TypeWebApplication, Match: rootName("app.html", "index.html")},
	{Label: TypeNodeApplication, Match: rootName("server.js", "app.js")},
	{Label: TypeCLI, Match: rootName("cli.js")},
}

var contributionLabels = []struct{ key, label string }{
	{"commands", "Commands"},
	{"menus", "Menus"},
	{"keybindings", "Keybindings"},
	{"configuration", "Settings"},
}

// DetectProjectType returns the label of the highest-precedence matching rule,
// or TypeUnknown.
func DetectProjectType(s *signals.Signals) ProjectType {
	pt := ProjectType{Label: First(typeRules, s, TypeUnknown)}
	if pt.Label == TypeVSCodeExtension {
		var parts []string
		for _, c := range contributionLabels {
			if contains(s.Manifest.Contributes, c.key) {
				parts = append(parts, c.label)
			}
		}
		if len(parts) > 0 {
			pt.Detail = "Contributes: " + strings.Join(parts, ", ")
		}
	}
	return pt
}

func runtimeDep(names ...string) func(*signals.Signals) bool {
	return func(s *signals.Signals) bool {
		for _, n := range names {
			if s.Manifest.HasDependency(n) {
				return true
			}
		}
		return false
	}
}

func rootName(names ...string) func(*signals.Signals) bool {
	return func(s *signals.Signals) bool {
		for _, n := range names {
			if s.HasRootName(n) {
				return true
			}
		}
		return false
	}
}

const workflowsDir = ".github/workflows"

// filesUnder returns the collected files whose path starts with dir + "/".
func filesUnder(s *signals.Signals, dir string) []string {
	prefix := dir + "/"
	var out []string
	for _, f := range s.Files {
		if strings.HasPrefix(f, prefix) {
			out = append(out, f)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
