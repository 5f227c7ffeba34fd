package query

import "movieshelf/internal/library"

// Filters holds optional movie bounds. A nil field is unconstrained.
type Filters struct {
	MinRating *float64
	StartYear *int
	EndYear   *int
}

// Filter returns the movies satisfying every supplied bound, in snapshot
// order. No matches yields an empty slice, never an error.
func Filter(movies []library.Movie, filters Filters) []library.Movie {
	matches := []library.Movie{}
	for _, movie := range movies {
		if filters.MinRating != nil && movie.Rating < *filters.MinRating {
			continue
		}
		if filters.StartYear != nil && movie.Year < *filters.StartYear {
			continue
		}
		if filters.EndYear != nil && movie.Year > *filters.EndYear {
			continue
		}
		matches = append(matches, movie)
	}
	return matches
}
