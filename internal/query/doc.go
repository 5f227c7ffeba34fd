// Package query derives read-only views from movie snapshots: statistics,
// substring and fuzzy search, sorted orderings, range filters, and a random
// pick. Nothing here mutates the store; every function works on the slice a
// library.Store List call returned.
package query
