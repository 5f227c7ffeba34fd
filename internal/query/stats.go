package query

import (
	"errors"
	"sort"

	"movieshelf/internal/library"
)

// ErrEmptyCollection reports an operation that needs at least one movie.
var ErrEmptyCollection = errors.New("no movies in the collection")

// Stats summarizes the ratings of a snapshot. Best and Worst hold every
// title tied at the maximum and minimum rating, in snapshot order.
type Stats struct {
	Mean   float64
	Median float64
	Best   []string
	Worst  []string
}

// Compute derives rating statistics. Fails with ErrEmptyCollection instead
// of dividing by zero on an empty snapshot.
func Compute(movies []library.Movie) (Stats, error) {
	if len(movies) == 0 {
		return Stats{}, ErrEmptyCollection
	}

	ratings := make([]float64, 0, len(movies))
	var sum float64
	for _, movie := range movies {
		ratings = append(ratings, movie.Rating)
		sum += movie.Rating
	}

	sorted := make([]float64, len(ratings))
	copy(sorted, ratings)
	sort.Float64s(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	best := sorted[len(sorted)-1]
	worst := sorted[0]

	stats := Stats{
		Mean:   sum / float64(len(ratings)),
		Median: median,
	}
	for _, movie := range movies {
		if movie.Rating == best {
			stats.Best = append(stats.Best, movie.Title)
		}
		if movie.Rating == worst {
			stats.Worst = append(stats.Worst, movie.Title)
		}
	}
	return stats, nil
}
