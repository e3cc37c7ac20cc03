package classify

import (
	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// Tech stack labels other code refers to.
const (
	StackTypeScript = "TypeScript"
	StackJavaScript = "JavaScript"
	StackPython     = "Python"
	StackCSharp     = "C# (.NET)"
	StackGo         = "Go"
	StackRust       = "Rust"
	StackNode       = "Node.js"
	StackReact      = "React"
	StackVite       = "Vite"
	StackNext       = "Next.js"
	StackExpress    = "Express.js"
	StackNest       = "NestJS"
	StackFlask      = "Flask"
	StackDjango     = "Django"
	StackDotNet     = ".NET Core"
)

// stackRules are independent: every match contributes its label. Row order is
// display order only.
var stackRules = []Rule[*signals.Signals]{
	{Label: StackTypeScript, Match: ext(".ts", ".tsx")},
	{Label: StackJavaScript, Match: ext(".js", ".jsx", ".mjs", ".cjs")},
	{Label: StackPython, Match: ext(".py")},
	{Label: StackCSharp, Match: ext(".cs")},
	{Label: "Java", Match: ext(".java")},
	{Label: StackGo, Match: ext(".go")},
	{Label: StackRust, Match: ext(".rs")},
	{Label: "Ruby", Match: ext(".rb")},
	{Label: "PHP", Match: ext(".php")},
	{Label: "Kotlin", Match: ext(".kt")},
	{Label: "Swift", Match: ext(".swift")},
	{Label: StackNode, Match: func(s *signals.Signals) bool { return s.Manifest != nil }},
	{Label: StackReact, Match: anyDep("react")},
	{Label: StackVite, Match: anyDep("vite")},
	{Label: StackNext, Match: anyDep("next")},
	{Label: StackExpress, Match: anyDep("express")},
	{Label: StackNest, Match: anyDep("nestjs", "@nestjs/core")},
	{Label: StackTypeScript, Match: anyDep("typescript")},
	{Label: "Vue", Match: anyDep("vue")},
	{Label: "Svelte", Match: anyDep("svelte")},
	{Label: "Angular", Match: anyDep("@angular/core")},
	{Label: StackFlask, Match: pythonDep("flask")},
	{Label: StackDjango, Match: pythonDep("django")},
	{Label: "FastAPI", Match: pythonDep("fastapi")},
	{Label: StackDotNet, Match: ext(".csproj")},
}

// DetectTechStack returns every matching stack label, deduplicated, in table order.
func DetectTechStack(s *signals.Signals) []string {
	return All(stackRules, s)
}

func ext(exts ...string) func(*signals.Signals) bool {
	return func(s *signals.Signals) bool {
		for _, e := range exts {
			if s.HasExt(e) {
				return true
			}
		}
		return false
	}
}

func anyDep(names ...string) func(*signals.Signals) bool {
	return func(s *signals.Signals) bool {
		for _, n := range names {
			if s.Manifest.HasAnyDependency(n) {
				return true
			}
		}
		return false
	}
}

func pythonDep(name string) func(*signals.Signals) bool {
	return func(s *signals.Signals) bool {
		if s.Requirements.Has(name) {
			return true
		}
		return s.PyProject != nil && contains(s.PyProject.Dependencies, name)
	}
}
