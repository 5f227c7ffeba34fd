// Package website renders a user's movie collection to a static HTML page.
//
// The page is produced by substituting two placeholders in an embedded
// template with a heading and a list of movie-entry fragments. The output
// file name is derived from the owning user's name.
package website

import (
	_ "embed"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"movieshelf/internal/library"
	"movieshelf/internal/textutil"
)

//go:embed template.html
var pageTemplate string

const (
	titlePlaceholder = "__TEMPLATE_TITLE__"
	gridPlaceholder  = "__TEMPLATE_MOVIE_GRID__"
)

// Generate writes the HTML page for a user's snapshot into outputDir and
// returns the written file path. An empty snapshot still renders a valid
// page with an empty grid. A non-empty pageTitle overrides the default
// heading derived from the user's name.
func Generate(user library.User, movies []library.Movie, outputDir, pageTitle string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	heading := strings.TrimSpace(pageTitle)
	if heading == "" {
		heading = fmt.Sprintf("%s's Movies", cases.Title(language.Und).String(user.Name))
	}
	page := strings.ReplaceAll(pageTemplate, titlePlaceholder, html.EscapeString(heading))
	page = strings.Replace(page, gridPlaceholder, renderGrid(movies), 1)

	outputPath := filepath.Join(outputDir, textutil.SanitizeToken(user.Name)+".html")
	if err := os.WriteFile(outputPath, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return outputPath, nil
}

func renderGrid(movies []library.Movie) string {
	var b strings.Builder
	for _, movie := range movies {
		b.WriteString("    <li>\n        <div class=\"movie\"")
		if note := strings.TrimSpace(movie.Note); note != "" {
			fmt.Fprintf(&b, " title=%q", html.EscapeString(note))
		}
		b.WriteString(">\n")
		if poster := strings.TrimSpace(movie.Poster); poster != "" {
			fmt.Fprintf(&b, "            <img class=\"movie-poster\" src=%q alt=%q>\n",
				html.EscapeString(poster), html.EscapeString(movie.Title))
		} else {
			b.WriteString("            <div class=\"movie-poster-missing\">no poster</div>\n")
		}
		fmt.Fprintf(&b, "            <div class=\"movie-title\">%s</div>\n", html.EscapeString(movie.Title))
		fmt.Fprintf(&b, "            <div class=\"movie-year\">%d</div>\n", movie.Year)
		fmt.Fprintf(&b, "            <div class=\"movie-rating\">%.1f</div>\n", movie.Rating)
		b.WriteString("        </div>\n    </li>\n")
	}
	return b.String()
}
