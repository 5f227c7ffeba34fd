package query_test

import (
	"testing"

	"movieshelf/internal/library"
	"movieshelf/internal/query"
)

func titlesOf(movies []library.Movie) []string {
	titles := make([]string, len(movies))
	for i, movie := range movies {
		titles[i] = movie.Title
	}
	return titles
}

func assertOrder(t *testing.T, got []library.Movie, want ...string) {
	t.Helper()
	titles := titlesOf(got)
	if len(titles) != len(want) {
		t.Fatalf("order = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
}

func TestSortByRatingDescending(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "A", Rating: 5},
		library.Movie{Title: "B", Rating: 9},
		library.Movie{Title: "C", Rating: 7},
	)
	assertOrder(t, query.SortByRating(movies), "B", "C", "A")
}

func TestSortByRatingStableTies(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "First", Rating: 8},
		library.Movie{Title: "Second", Rating: 8},
		library.Movie{Title: "Third", Rating: 8},
	)
	assertOrder(t, query.SortByRating(movies), "First", "Second", "Third")
}

func TestSortByYearNewestFirst(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "A", Year: 2000},
		library.Movie{Title: "B", Year: 2020},
		library.Movie{Title: "C", Year: 2010},
	)
	assertOrder(t, query.SortByYear(movies, true), "B", "C", "A")
}

func TestSortByYearOldestFirst(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "A", Year: 2000},
		library.Movie{Title: "B", Year: 2020},
		library.Movie{Title: "C", Year: 2010},
	)
	assertOrder(t, query.SortByYear(movies, false), "A", "C", "B")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "A", Rating: 5},
		library.Movie{Title: "B", Rating: 9},
	)
	_ = query.SortByRating(movies)
	if movies[0].Title != "A" {
		t.Fatal("SortByRating mutated its input")
	}
}
