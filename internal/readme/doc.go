// Package readme synthesizes document sections from a classified project and
// composes them into the final markdown text.
//
// Every section passes through one gating predicate, Section.Included. The
// table of contents and the body are both rendered from Document.Entries, so
// a heading can never appear in one without the other.
package readme
