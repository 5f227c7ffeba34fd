package normalize_test

import (
	"errors"
	"testing"

	"movieshelf/internal/config"
	"movieshelf/internal/normalize"
	"movieshelf/internal/omdb"
)

var bounds = config.Validation{MinYear: 1900, MaxYear: 2025, MinRating: 0, MaxRating: 10}

type stubPrompter struct {
	year   int
	rating float64
	called bool
}

func (p *stubPrompter) Year(min, max int) (int, error) {
	p.called = true
	return p.year, nil
}

func (p *stubPrompter) Rating(min, max float64) (float64, error) {
	p.called = true
	return p.rating, nil
}

func TestNormalizeCleanRecord(t *testing.T) {
	rec := &omdb.Record{Title: "Batman", Year: "1989", ImdbRating: "7.5", Poster: "http://img/batman.jpg"}
	fields, err := normalize.Normalize(rec, nil, bounds)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	want := normalize.Fields{Title: "Batman", Year: 1989, Rating: 7.5, Poster: "http://img/batman.jpg"}
	if fields != want {
		t.Fatalf("fields = %+v, want %+v", fields, want)
	}
}

func TestNormalizeYearRange(t *testing.T) {
	rec := &omdb.Record{Title: "Some Show", Year: "2010–2012", ImdbRating: "8.0"}
	fields, err := normalize.Normalize(rec, nil, bounds)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if fields.Year != 2010 {
		t.Fatalf("year = %d, want 2010", fields.Year)
	}
}

func TestNormalizeRatingRounded(t *testing.T) {
	rec := &omdb.Record{Title: "Batman", Year: "1989", ImdbRating: "7.666"}
	fields, err := normalize.Normalize(rec, nil, bounds)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if fields.Rating != 7.7 {
		t.Fatalf("rating = %v, want 7.7", fields.Rating)
	}
}

func TestNormalizePosterSentinel(t *testing.T) {
	tests := []struct {
		name   string
		poster string
	}{
		{"sentinel", "N/A"},
		{"empty", ""},
		{"spaces", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &omdb.Record{Title: "Batman", Year: "1989", ImdbRating: "7.5", Poster: tt.poster}
			fields, err := normalize.Normalize(rec, nil, bounds)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if fields.Poster != "" {
				t.Fatalf("poster = %q, want empty", fields.Poster)
			}
		})
	}
}

func TestNormalizeUnusableRatingFallsBack(t *testing.T) {
	prompter := &stubPrompter{rating: 6.35}
	rec := &omdb.Record{Title: "Obscure Film", Year: "1977", ImdbRating: "N/A"}
	fields, err := normalize.Normalize(rec, prompter, bounds)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if !prompter.called {
		t.Fatal("expected prompter fallback for N/A rating")
	}
	if fields.Rating != 6.4 {
		t.Fatalf("fallback rating not rounded: %v", fields.Rating)
	}
}

func TestNormalizeUnusableYearFallsBack(t *testing.T) {
	prompter := &stubPrompter{year: 1942, rating: 0}
	rec := &omdb.Record{Title: "Obscure Film", Year: "??", ImdbRating: "7.0"}
	fields, err := normalize.Normalize(rec, prompter, bounds)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if fields.Year != 1942 {
		t.Fatalf("year = %d, want 1942", fields.Year)
	}
}

func TestNormalizeNonInteractiveFails(t *testing.T) {
	rec := &omdb.Record{Title: "Obscure Film", Year: "1977", ImdbRating: "N/A"}
	_, err := normalize.Normalize(rec, nil, bounds)
	if !errors.Is(err, normalize.ErrUnusableField) {
		t.Fatalf("expected ErrUnusableField, got %v", err)
	}
}

func TestNormalizeMissingTitle(t *testing.T) {
	rec := &omdb.Record{Year: "1977", ImdbRating: "7.0"}
	if _, err := normalize.Normalize(rec, nil, bounds); !errors.Is(err, normalize.ErrUnusableField) {
		t.Fatalf("expected ErrUnusableField for missing title, got %v", err)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.666, 7.7},
		{7.64, 7.6},
		{9.0, 9.0},
		{7.65, 7.7},
	}
	for _, tt := range tests {
		if got := normalize.Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
