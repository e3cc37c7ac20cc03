// Package errors provides classified error primitives used across readmegen.
//
// Only a handful of conditions are errors at all in readmegen: a missing optional
// file is an absent signal, a malformed manifest is treated as absent, and an
// unreadable file degrades a single signal. What remains (a missing or invalid
// project root, a broken tool configuration) is reported through ClassifiedError
// so the CLI can pick an exit code.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryNotFound, "project root does not exist").
//		WithContext("root", root).
//		Fatal().
//		Build()
package errors
