// Package signals reads discrete facts from a project root: manifest keys,
// marker files and the raw text of well-known configuration files.
//
// Collectors return a nil value when their source is absent or malformed.
// They return an error only when the source exists but cannot be read; Collect
// logs that error and degrades the signal to absent.
package signals
