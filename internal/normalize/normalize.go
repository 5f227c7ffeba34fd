package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"movieshelf/internal/config"
	"movieshelf/internal/omdb"
)

// ErrUnusableField reports a raw field that could not be parsed and had no
// fallback value available.
var ErrUnusableField = errors.New("unusable metadata field")

// Prompter supplies fallback values for fields the metadata source could not
// provide. Implementations prompt interactively; a nil Prompter means the
// caller runs non-interactively and unusable fields become errors.
type Prompter interface {
	Year(min, max int) (int, error)
	Rating(min, max float64) (float64, error)
}

// Fields holds normalized movie values ready for the store.
type Fields struct {
	Title  string
	Year   int
	Rating float64
	// Poster is empty when the source had none.
	Poster string
}

// Normalize converts a raw OMDb record into typed fields. The canonical
// title from the source is what gets persisted, not the query string.
func Normalize(rec *omdb.Record, prompter Prompter, bounds config.Validation) (Fields, error) {
	if rec == nil {
		return Fields{}, errors.New("record is nil")
	}
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return Fields{}, fmt.Errorf("%w: title missing from metadata", ErrUnusableField)
	}

	year, ok := parseYear(rec.Year)
	if !ok {
		if prompter == nil {
			return Fields{}, fmt.Errorf("%w: year %q", ErrUnusableField, rec.Year)
		}
		fallback, err := prompter.Year(bounds.MinYear, bounds.MaxYear)
		if err != nil {
			return Fields{}, fmt.Errorf("year fallback: %w", err)
		}
		year = fallback
	}

	rating, ok := parseRating(rec.ImdbRating)
	if !ok {
		if prompter == nil {
			return Fields{}, fmt.Errorf("%w: rating %q", ErrUnusableField, rec.ImdbRating)
		}
		fallback, err := prompter.Rating(bounds.MinRating, bounds.MaxRating)
		if err != nil {
			return Fields{}, fmt.Errorf("rating fallback: %w", err)
		}
		rating = fallback
	}

	return Fields{
		Title:  title,
		Year:   year,
		Rating: Round1(rating),
		Poster: normalizePoster(rec.Poster),
	}, nil
}

// Round1 rounds a rating to one decimal place.
func Round1(rating float64) float64 {
	return math.Round(rating*10) / 10
}

// parseYear extracts the leading four-digit year. OMDb year strings include
// plain years and ranges like "2010–2012".
func parseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 4 {
		return 0, false
	}
	digits := raw[:4]
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return year, true
}

func parseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == omdb.NotAvailable {
		return 0, false
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return rating, true
}

func normalizePoster(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == omdb.NotAvailable {
		return ""
	}
	return raw
}
