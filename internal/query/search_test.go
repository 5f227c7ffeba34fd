package query_test

import (
	"reflect"
	"testing"

	"movieshelf/internal/library"
	"movieshelf/internal/query"
)

const (
	testCutoff = 0.4
	testLimit  = 5
)

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "Batman"},
		library.Movie{Title: "The Batman Returns"},
		library.Movie{Title: "Inception"},
	)

	got := query.Search(movies, "bat", testCutoff, testLimit)
	want := []string{"Batman", "The Batman Returns"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search = %v, want %v", got, want)
	}
}

func TestSearchSubstringKeepsSnapshotOrder(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "The Batman Returns"},
		library.Movie{Title: "Batman"},
	)
	got := query.Search(movies, "BATMAN", testCutoff, testLimit)
	want := []string{"The Batman Returns", "Batman"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search = %v, want %v", got, want)
	}
}

func TestSearchFuzzyFallback(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "Batman"},
		library.Movie{Title: "Inception"},
	)

	got := query.Search(movies, "btaman", testCutoff, testLimit)
	if len(got) == 0 {
		t.Fatal("expected fuzzy candidates for btaman")
	}
	if got[0] != "Batman" {
		t.Fatalf("expected Batman as top candidate, got %v", got)
	}
}

func TestSearchFuzzyOnlyWhenNoSubstringMatch(t *testing.T) {
	// "man" matches Batman as a substring; Men is only fuzzily close and
	// must not widen the result.
	movies := snapshot(
		library.Movie{Title: "Batman"},
		library.Movie{Title: "Men"},
	)
	got := query.Search(movies, "man", testCutoff, testLimit)
	want := []string{"Batman"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search = %v, want %v", got, want)
	}
}

func TestSearchFuzzyRespectsLimit(t *testing.T) {
	movies := snapshot(
		library.Movie{Title: "Alien"},
		library.Movie{Title: "Aliens"},
		library.Movie{Title: "Alien 3"},
		library.Movie{Title: "Alien 4"},
		library.Movie{Title: "Alien 5"},
		library.Movie{Title: "Alien 6"},
	)
	got := query.Search(movies, "urlien", testCutoff, 3)
	if len(got) > 3 {
		t.Fatalf("expected at most 3 candidates, got %d: %v", len(got), got)
	}
}

func TestSearchNoMatchesIsEmpty(t *testing.T) {
	movies := snapshot(library.Movie{Title: "Batman"})
	if got := query.Search(movies, "zzzzzzzzzz", testCutoff, testLimit); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
