// Package classify turns collected signals into categorical judgments about a
// project: its type, technology stack, dependencies, monorepo layout, features,
// test tooling and a handful of single-sentence notes.
//
// Heuristics with precedence are expressed as ordered Rule tables evaluated by
// First; independent predicates are evaluated by All. Adding a heuristic means
// adding a table row, not a branch.
package classify
