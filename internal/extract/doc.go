// Package extract pulls reusable content out of a project: the overview
// paragraph and code examples of a previous document, example files,
// documentation and media links, user-supplied sections, CLI entry points,
// community files and remote development markers.
package extract
