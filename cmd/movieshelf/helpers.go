package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"movieshelf/internal/config"
	"movieshelf/internal/library"
)

func omdbTimeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

func validateManualFields(bounds config.Validation, year int, rating float64) error {
	if year < bounds.MinYear || year > bounds.MaxYear {
		return fmt.Errorf("year must be between %d and %d", bounds.MinYear, bounds.MaxYear)
	}
	if rating < bounds.MinRating || rating > bounds.MaxRating {
		return fmt.Errorf("rating must be between %.1f and %.1f", bounds.MinRating, bounds.MaxRating)
	}
	return nil
}

// printMovieTable writes the standard movie listing followed by a summary
// line, or a friendly notice when the collection is empty.
func printMovieTable(cmd *cobra.Command, movies []library.Movie, summary string) {
	out := cmd.OutOrStdout()
	if len(movies) == 0 {
		fmt.Fprintln(out, "No movies in the collection yet")
		return
	}
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			m.Title,
			strconv.Itoa(m.Year),
			fmt.Sprintf("%.1f", m.Rating),
			m.Note,
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Title", "Year", "Rating", "Note"}, rows, 1, 2))
	if summary != "" {
		fmt.Fprintln(out, summary)
	}
}
