package classify

import (
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/signals"
)

// PrinciplesPlaceholder is the single entry reported when nothing is inferred.
const PrinciplesPlaceholder = "Add your design principles here."

type principleInput struct {
	stack []string
	names []string
}

func rootNameContains(sub string) func(principleInput) bool {
	return func(in principleInput) bool {
		for _, n := range in.names {
			if strings.Contains(n, sub) {
				return true
			}
		}
		return false
	}
}

var principleRules = []Rule[principleInput]{
	{Label: "Component-based architecture", Match: func(in principleInput) bool { return contains(in.stack, StackReact) }},
	{Label: "RESTful API design", Match: func(in principleInput) bool { return contains(in.stack, StackExpress) }},
	{Label: "Type safety and maintainability", Match: func(in principleInput) bool { return contains(in.stack, StackTypeScript) }},
	{Label: "Test-driven development", Match: rootNameContains("test")},
	{Label: "Separation of concerns", Match: rootNameContains("src")},
}

// DesignPrinciples infers principles from the stack and root names, falling
// back to PrinciplesPlaceholder.
func DesignPrinciples(s *signals.Signals, stack []string) []string {
	p := All(principleRules, principleInput{stack: stack, names: s.RootNames})
	if len(p) == 0 {
		return []string{PrinciplesPlaceholder}
	}
	return p
}
