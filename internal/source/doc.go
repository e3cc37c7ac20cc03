// Package source is the filesystem view the readmegen pipeline reads a project through.
//
// Every path handed to a Source is slash-separated and relative to the project
// root. Missing files are never errors: Exists/List return false/nil and
// ReadOptional reports found=false. Only a file that exists but cannot be read
// yields an error (wrapping ErrUnreadable), which callers degrade to an absent
// signal.
package source
