package classify

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// RunPlaceholder is reported when no run command can be inferred.
const RunPlaceholder = "# Replace this with your run command"

type runInput struct {
	typ     string
	stack   []string
	entry   string
	signals *signals.Signals
}

func (r runInput) has(label string) bool { return contains(r.stack, label) }

func stackHas(labels ...string) func(runInput) bool {
	return func(r runInput) bool {
		for _, l := range labels {
			if r.has(l) {
				return true
			}
		}
		return false
	}
}

func typeIs(label string) func(runInput) bool {
	return func(r runInput) bool { return r.typ == label }
}

func script(name string) func(runInput) bool {
	return func(r runInput) bool {
		return r.signals.Manifest != nil && contains(r.signals.Manifest.Scripts, name)
	}
}

// runRules labels may reference {entry} and {dir}, the inferred entry file and
// its directory.
var runRules = []Rule[runInput]{
	{Label: "Run via VS Code (F5 or Extension Host)", Match: typeIs(TypeVSCodeExtension)},
	{Label: "Open app.html or index.html in your browser", Match: typeIs(TypeWebApplication)},
	{Label: "node {entry}", Match: func(r runInput) bool {
		return r.typ == TypeCLI && r.signals.Manifest != nil
	}},
	{Label: "npm run dev", Match: stackHas(StackNext, StackVite)},
	{Label: "npm start", Match: stackHas(StackReact)},
	{Label: "npm run start", Match: stackHas(StackNest)},
	{Label: "npm run dev", Match: stackHas(StackExpress)},
	{Label: "npm start", Match: script("start")},
	{Label: "npm run dev", Match: script("dev")},
	{Label: "go run .", Match: func(r runInput) bool { return r.signals.GoModule != nil && r.entry == "main.go" }},
	{Label: "go run ./{dir}", Match: func(r runInput) bool {
		return r.signals.GoModule != nil && strings.HasPrefix(r.entry, "cmd/")
	}},
	{Label: "cargo run", Match: func(r runInput) bool { return r.signals.Cargo != nil }},
	{Label: "node {entry}", Match: stackHas(StackNode, StackTypeScript)},
	{Label: "python app.py", Match: stackHas(StackFlask)},
	{Label: "python manage.py runserver", Match: stackHas(StackDjango)},
	{Label: "uvicorn main:app --reload", Match: stackHas("FastAPI")},
	{Label: "python main.py", Match: func(r runInput) bool { return r.signals.HasRootName("main.py") }},
	{Label: "dotnet run", Match: stackHas(StackDotNet, StackCSharp)},
}

// RunCommand infers how to start the project, or returns RunPlaceholder.
func RunCommand(s *signals.Signals, pt ProjectType, stack []string, entry string) string {
	in := runInput{typ: pt.Label, stack: stack, entry: entry, signals: s}
	cmd := First(runRules, in, RunPlaceholder)
	return strings.NewReplacer("{entry}", entry, "{dir}", path.Dir(entry)).Replace(cmd)
}
