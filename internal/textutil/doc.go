// Package textutil provides text processing utilities for similarity scoring
// and filename sanitization.
//
// The primary use cases are:
//   - Computing normalized edit-distance similarity for fuzzy title search
//   - Sanitizing user names for safe use as output file names
package textutil
