// Package edgelist reads and writes the plain-text edge list used to feed
// the cut search.
//
// Each non-blank line has the form
//
//	index: u-v: weight
//
// where index is the edge identifier, u and v are vertex names (no ':' or
// '-'), and weight is a positive integer. Whitespace around every field is
// ignored. Lines starting with '#' are comments.
//
// A cut is written back as its identifiers in ascending order joined by
// '-', for example "2-3". The empty cut is the empty string.
package edgelist
