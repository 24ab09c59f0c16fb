// Package palette converts hex colors to rounded HSL triples and filters
// ordered color schemes by their distance to a reference color.
//
// Everything here is synchronous and in memory. Callers serialize access to a
// Finder and to Repository.Load.
package palette
