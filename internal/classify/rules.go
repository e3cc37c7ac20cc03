package classify

import "git.home.luguber.info/inful/readmegen/internal/util/sets"

// Rule pairs a predicate over the input with the label it yields.
type Rule[T any] struct {
	Label string
	Match func(T) bool
}

// First returns the label of the first matching rule, or fallback.
func First[T any](rules []Rule[T], in T, fallback string) string {
	for _, r := range rules {
		if r.Match(in) {
			return r.Label
		}
	}
	return fallback
}

// All returns the labels of every matching rule in table order, deduplicated.
func All[T any](rules []Rule[T], in T) []string {
	labels := sets.NewOrdered[string]()
	for _, r := range rules {
		if r.Match(in) {
			labels.Add(r.Label)
		}
	}
	return labels.Values()
}
