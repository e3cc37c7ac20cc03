// Package pipeline runs one generation pass over a project root: collect,
// extract, classify, synthesize and compose, in that order. Each stage is
// timed and reported to a metrics.Recorder.
package pipeline
