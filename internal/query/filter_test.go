package query_test

import (
	"testing"

	"movieshelf/internal/library"
	"movieshelf/internal/query"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func filterFixture() []library.Movie {
	return snapshot(
		library.Movie{Title: "Old Classic", Year: 1975, Rating: 9.5},
		library.Movie{Title: "Modern Hit", Year: 2015, Rating: 8.0},
		library.Movie{Title: "Modern Flop", Year: 2018, Rating: 4.0},
		library.Movie{Title: "Mid Era", Year: 1999, Rating: 7.0},
	)
}

func TestFilterAllBounds(t *testing.T) {
	got := query.Filter(filterFixture(), query.Filters{
		MinRating: floatPtr(7),
		StartYear: intPtr(2000),
	})
	if len(got) != 1 || got[0].Title != "Modern Hit" {
		t.Fatalf("Filter = %v", titlesOf(got))
	}
}

func TestFilterEndYear(t *testing.T) {
	got := query.Filter(filterFixture(), query.Filters{EndYear: intPtr(1999)})
	if len(got) != 2 || got[0].Title != "Old Classic" || got[1].Title != "Mid Era" {
		t.Fatalf("Filter = %v", titlesOf(got))
	}
}

func TestFilterUnconstrained(t *testing.T) {
	got := query.Filter(filterFixture(), query.Filters{})
	if len(got) != 4 {
		t.Fatalf("unconstrained filter dropped movies: %v", titlesOf(got))
	}
}

func TestFilterNothingMatchesIsEmpty(t *testing.T) {
	got := query.Filter(filterFixture(), query.Filters{MinRating: floatPtr(9.9)})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", titlesOf(got))
	}
}
