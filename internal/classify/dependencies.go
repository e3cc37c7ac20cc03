package classify

import "git.home.luguber.info/inful/readmegen/internal/signals"

// Dependencies lists declared dependencies in source order: package.json
// runtime then development keys, requirements.txt lines verbatim, pyproject,
// Cargo and go.mod. Duplicates across sources are kept.
func Dependencies(s *signals.Signals) []string {
	deps := []string{}
	deps = append(deps, s.DependencyKeys()...)
	if s.Requirements != nil {
		deps = append(deps, s.Requirements.Lines...)
	}
	if s.PyProject != nil {
		deps = append(deps, s.PyProject.Dependencies...)
	}
	if s.Cargo != nil {
		deps = append(deps, s.Cargo.Dependencies...)
	}
	if s.GoModule != nil {
		deps = append(deps, s.GoModule.Requires...)
	}
	return deps
}
