package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"movieshelf/internal/library"
	"movieshelf/internal/website"
)

func newWebsiteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "website",
		Short: "Generate a static HTML page for the collection",
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
				path, err := website.Generate(user, movies, cfg.Website.OutputDir, cfg.Website.PageTitle)
				if err != nil {
					return err
				}
				ctx.log().Info("website generated", "user", user.Name, "path", path, "movies", len(movies))
				fmt.Fprintf(cmd.OutOrStdout(), "Website generated at %s\n", path)
				return nil
			})
		},
	}
}
