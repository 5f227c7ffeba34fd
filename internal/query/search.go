package query

import (
	"sort"
	"strings"

	"movieshelf/internal/library"
	"movieshelf/internal/textutil"
)

// Search finds titles matching the query in two phases. Phase one is a
// case-insensitive substring match returning every hit in snapshot order.
// Only when that finds nothing does phase two rank fuzzy candidates with a
// similarity ratio of at least cutoff, best first, capped at limit. An empty
// result from both phases is normal.
func Search(movies []library.Movie, queryText string, cutoff float64, limit int) []string {
	queryText = strings.TrimSpace(queryText)
	if queryText == "" || len(movies) == 0 {
		return nil
	}

	lowered := strings.ToLower(queryText)
	var matches []string
	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), lowered) {
			matches = append(matches, movie.Title)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	type candidate struct {
		title string
		score float64
	}
	var candidates []candidate
	for _, movie := range movies {
		score := textutil.Ratio(queryText, movie.Title)
		if score >= cutoff {
			candidates = append(candidates, candidate{title: movie.Title, score: score})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	titles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		titles = append(titles, c.title)
	}
	return titles
}
