package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"movieshelf/internal/library"
	"movieshelf/internal/normalize"
	"movieshelf/internal/omdb"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the user's movies",
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
				printMovieTable(cmd, movies, fmt.Sprintf("%d movies in total", len(movies)))
				return nil
			})
		},
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		year   int
		rating float64
		poster string
		fetch  bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a movie, manually or via OMDb lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			title := args[0]

			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}

				fields := normalize.Fields{Title: title, Year: year, Rating: rating, Poster: poster}
				if fetch {
					fields, err = fetchFields(ctx, cmd, title)
					if err != nil {
						return err
					}
					if fields.Title == "" {
						// Clean not-found outcome; nothing to add.
						return nil
					}
				} else {
					if !cmd.Flags().Changed("year") || !cmd.Flags().Changed("rating") {
						return errors.New("--year and --rating are required unless --fetch is set")
					}
					if err := validateManualFields(cfg.Validation, year, rating); err != nil {
						return err
					}
					fields.Rating = normalize.Round1(rating)
				}

				added, err := store.Add(cmd.Context(), user.ID, fields.Title, fields.Year, fields.Rating, fields.Poster)
				if errors.Is(err, library.ErrDuplicateTitle) {
					return fmt.Errorf("movie %q is already in the collection", fields.Title)
				}
				if err != nil {
					return err
				}
				ctx.log().Info("movie added",
					"user", user.Name, "title", added.Title, "year", added.Year, "rating", added.Rating)
				fmt.Fprintf(cmd.OutOrStdout(), "Movie %q added successfully\n", added.Title)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating")
	cmd.Flags().StringVar(&poster, "poster", "", "Poster URL")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch metadata from OMDb instead of entering it manually")

	return cmd
}

// fetchFields runs the OMDb lookup and normalization for the add command.
// A zero-valued Fields return with nil error means the title was not found.
func fetchFields(ctx *commandContext, cmd *cobra.Command, title string) (normalize.Fields, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return normalize.Fields{}, err
	}
	apiKey, err := cfg.RequireOMDbKey()
	if err != nil {
		return normalize.Fields{}, err
	}
	client, err := omdb.New(apiKey, cfg.OMDb.BaseURL,
		omdb.WithTimeout(omdbTimeout(cfg.OMDb.TimeoutSeconds)))
	if err != nil {
		return normalize.Fields{}, err
	}

	record, err := client.Fetch(cmd.Context(), title)
	if err != nil {
		ctx.log().Error("omdb fetch failed", "title", title, "error", err)
		return normalize.Fields{}, err
	}
	if record == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "OMDb does not know %q; nothing was added\n", title)
		return normalize.Fields{}, nil
	}

	var prompter normalize.Prompter
	if p := newInteractivePrompter(); p != nil {
		prompter = p
	}
	fields, err := normalize.Normalize(record, prompter, cfg.Validation)
	if err != nil {
		return normalize.Fields{}, err
	}
	return fields, nil
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a movie by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}
				count, err := store.Delete(cmd.Context(), user.ID, args[0])
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Movie %q not found\n", args[0])
					return nil
				}
				ctx.log().Info("movie deleted", "user", user.Name, "title", args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Movie %q deleted\n", args[0])
				return nil
			})
		},
	}
}

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		rating float64
		note   string
	)

	cmd := &cobra.Command{
		Use:   "update <title>",
		Short: "Update a movie's rating or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ratingSet := cmd.Flags().Changed("rating")
			noteSet := cmd.Flags().Changed("note")
			if ratingSet == noteSet {
				return errors.New("set exactly one of --rating or --note")
			}

			return ctx.withStore(func(store library.Store) error {
				user, err := ctx.resolveUser(cmd.Context(), store)
				if err != nil {
					return err
				}

				var count int64
				if ratingSet {
					if rating < cfg.Validation.MinRating || rating > cfg.Validation.MaxRating {
						return fmt.Errorf("rating must be between %.1f and %.1f",
							cfg.Validation.MinRating, cfg.Validation.MaxRating)
					}
					count, err = store.UpdateRating(cmd.Context(), user.ID, args[0], normalize.Round1(rating))
				} else {
					count, err = store.UpdateNote(cmd.Context(), user.ID, args[0], note)
				}
				if err != nil {
					return err
				}
				if count == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Movie %q not found\n", args[0])
					return nil
				}
				ctx.log().Info("movie updated", "user", user.Name, "title", args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Movie %q updated successfully\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&rating, "rating", 0, "New rating")
	cmd.Flags().StringVar(&note, "note", "", "New note")

	return cmd
}
