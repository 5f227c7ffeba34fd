package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movieshelf/internal/library"
	"movieshelf/internal/query"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show rating statistics for the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				movies, err := store.List(cmd.Context(), user.ID)
				if err != nil {
					return err
				}
				stats, err := query.Compute(movies)
				if errors.Is(err, query.ErrEmptyCollection) {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies in the collection yet")
					return nil
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Average rating: %.1f\n", stats.Mean)
				fmt.Fprintf(out, "Median rating:  %.1f\n", stats.Median)
				fmt.Fprintf(out, "Best rated:     %s\n", strings.Join(stats.Best, ", "))
				fmt.Fprintf(out, "Worst rated:    %s\n", strings.Join(stats.Worst, ", "))
				return nil
			})
		},
	}
}

func newRandomCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Pick a random movie from the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				movies, err := store.List(cmd.Context(), user.ID)
				if err != nil {
					return err
				}
				movie, err := query.Random(movies)
				if errors.Is(err, query.ErrEmptyCollection) {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies in the collection yet")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tonight's pick: %s (%d), rated %.1f\n",
					movie.Title, movie.Year, movie.Rating)
				return nil
			})
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the collection by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				movies, err := store.List(cmd.Context(), user.ID)
				if err != nil {
					return err
				}
				matches := query.Search(movies, args[0], cfg.Search.FuzzyCutoff, cfg.Search.FuzzyLimit)
				if len(matches) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No movies matching %q\n", args[0])
					return nil
				}
				out := cmd.OutOrStdout()
				for _, title := range matches {
					fmt.Fprintln(out, title)
				}
				fmt.Fprintf(out, "%d matches\n", len(matches))
				return nil
			})
		},
	}
}

func newSortCommand(ctx *commandContext) *cobra.Command {
	var oldestFirst bool

	cmd := &cobra.Command{
		Use:   "sort <rating|year>",
		Short: "List the collection sorted by rating or year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				movies, err := store.List(cmd.Context(), user.ID)
				if err != nil {
					return err
				}

				var sorted []library.Movie
				switch args[0] {
				case "rating":
					sorted = query.SortByRating(movies)
				case "year":
					sorted = query.SortByYear(movies, !oldestFirst)
				default:
					return fmt.Errorf("unknown sort key %q (expected rating or year)", args[0])
				}
				printMovieTable(cmd, sorted, fmt.Sprintf("%d movies in total", len(sorted)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "Sort years ascending instead of descending")

	return cmd
}

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var (
		minRating float64
		fromYear  int
		toYear    int
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List movies matching rating and year bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				movies, err := store.List(cmd.Context(), user.ID)
				if err != nil {
					return err
				}

				var filters query.Filters
				if cmd.Flags().Changed("min-rating") {
					filters.MinRating = &minRating
				}
				if cmd.Flags().Changed("from") {
					filters.StartYear = &fromYear
				}
				if cmd.Flags().Changed("to") {
					filters.EndYear = &toYear
				}

				filtered := query.Filter(movies, filters)
				if len(filtered) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies match the given filters")
					return nil
				}
				printMovieTable(cmd, filtered, fmt.Sprintf("%d matches", len(filtered)))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Only movies rated at least this value")
	cmd.Flags().IntVar(&fromYear, "from", 0, "Only movies released in or after this year")
	cmd.Flags().IntVar(&toYear, "to", 0, "Only movies released in or before this year")

	return cmd
}
