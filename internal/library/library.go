package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movieshelf/internal/config"
)

// User is an owner of a movie collection.
type User struct {
	ID   int64
	Name string
}

// Movie is one persisted collection entry. Poster and Note are empty when
// absent.
type Movie struct {
	ID     int64
	UserID int64
	Title  string
	Year   int
	Rating float64
	Poster string
	Note   string
}

var (
	// ErrDuplicateUser reports a CreateUser call with a name already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrDuplicateTitle reports an Add call for a (user, title) pair that
	// already exists. The original record is left untouched.
	ErrDuplicateTitle = errors.New("movie already exists")
)

// Store is the authority for persisted users and movies. List results are
// snapshots in insertion order; delete and update return affected row counts
// where zero means "not found" rather than an error.
type Store interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, name string) (User, error)
	// GetUserByName returns (nil, nil) when no such user exists.
	GetUserByName(ctx context.Context, name string) (*User, error)

	List(ctx context.Context, userID int64) ([]Movie, error)
	Add(ctx context.Context, userID int64, title string, year int, rating float64, poster string) (Movie, error)
	Delete(ctx context.Context, userID int64, title string) (int64, error)
	UpdateRating(ctx context.Context, userID int64, title string, rating float64) (int64, error)
	UpdateNote(ctx context.Context, userID int64, title string, note string) (int64, error)

	Close() error
}

// Open constructs the store selected by configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Library.Backend {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite", "":
		return OpenSQLite(cfg)
	default:
		return nil, fmt.Errorf("unknown library backend %q", cfg.Library.Backend)
	}
}

// EnsureUser returns the user with the given name, creating it when absent.
// The single-user mode resolves its implicit default user through this.
func EnsureUser(ctx context.Context, store Store, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, errors.New("user name must not be empty")
	}
	existing, err := store.GetUserByName(ctx, name)
	if err != nil {
		return User{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	user, err := store.CreateUser(ctx, name)
	if err != nil {
		// Lost a race with another invocation; read the winner back.
		if errors.Is(err, ErrDuplicateUser) {
			if existing, lookupErr := store.GetUserByName(ctx, name); lookupErr == nil && existing != nil {
				return *existing, nil
			}
		}
		return User{}, err
	}
	return user, nil
}
