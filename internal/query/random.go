package query

import (
	"math/rand"

	"movieshelf/internal/library"
)

// Random picks one movie from the snapshot, for the "movie for tonight"
// feature. Fails with ErrEmptyCollection on an empty snapshot.
func Random(movies []library.Movie) (library.Movie, error) {
	if len(movies) == 0 {
		return library.Movie{}, ErrEmptyCollection
	}
	return movies[rand.Intn(len(movies))], nil
}
