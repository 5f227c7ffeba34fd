package testsupport

import (
	"context"
	"testing"

	"movieshelf/internal/config"
	"movieshelf/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// SeedUser creates a user for tests using the provided store.
func SeedUser(t testing.TB, store library.Store, name string) library.User {
	t.Helper()

	user, err := store.CreateUser(context.Background(), name)
	if err != nil {
		t.Fatalf("store.CreateUser(%q): %v", name, err)
	}
	return user
}

// SeedMovie adds a movie for tests using the provided store.
func SeedMovie(t testing.TB, store library.Store, userID int64, title string, year int, rating float64) library.Movie {
	t.Helper()

	movie, err := store.Add(context.Background(), userID, title, year, rating, "")
	if err != nil {
		t.Fatalf("store.Add(%q): %v", title, err)
	}
	return movie
}
