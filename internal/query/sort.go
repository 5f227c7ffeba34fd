package query

import (
	"sort"

	"movieshelf/internal/library"
)

// SortByRating returns a new slice ordered by rating descending. The sort is
// stable: equal ratings keep their snapshot order.
func SortByRating(movies []library.Movie) []library.Movie {
	sorted := make([]library.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted
}

// SortByYear returns a new slice ordered by release year, newest first when
// the flag is set. Stable like SortByRating.
func SortByYear(movies []library.Movie, newestFirst bool) []library.Movie {
	sorted := make([]library.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		if newestFirst {
			return sorted[i].Year > sorted[j].Year
		}
		return sorted[i].Year < sorted[j].Year
	})
	return sorted
}
