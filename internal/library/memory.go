package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// MemoryStore is the legacy in-memory Store implementation. It honors the
// same contracts as the sqlite store but survives only for the process
// lifetime. Tests lean on it heavily.
type MemoryStore struct {
	mu         sync.Mutex
	users      []User
	movies     []Movie
	nextUserID int64
	nextID     int64
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextUserID: 1, nextID: 1}
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// ListUsers returns all users in creation order.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// CreateUser registers a new user name.
func (s *MemoryStore) CreateUser(ctx context.Context, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, errors.New("user name must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Name == name {
			return User{}, fmt.Errorf("%w: %s", ErrDuplicateUser, name)
		}
	}
	user := User{ID: s.nextUserID, Name: name}
	s.nextUserID++
	s.users = append(s.users, user)
	return user, nil
}

// GetUserByName fetches a user by exact name. Returns (nil, nil) when absent.
func (s *MemoryStore) GetUserByName(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Name == name {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// List returns a detached snapshot of the user's movies in insertion order.
func (s *MemoryStore) List(ctx context.Context, userID int64) ([]Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	movies := []Movie{}
	for _, movie := range s.movies {
		if movie.UserID == userID {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

// Add appends a movie, rejecting duplicate (user, title) pairs.
func (s *MemoryStore) Add(ctx context.Context, userID int64, title string, year int, rating float64, poster string) (Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Movie{}, errors.New("movie title must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, movie := range s.movies {
		if movie.UserID == userID && movie.Title == title {
			return Movie{}, fmt.Errorf("%w: %s", ErrDuplicateTitle, title)
		}
	}
	movie := Movie{ID: s.nextID, UserID: userID, Title: title, Year: year, Rating: rating, Poster: poster}
	s.nextID++
	s.movies = append(s.movies, movie)
	return movie, nil
}

// Delete removes a movie by title, reporting 0 or 1 removed entries.
func (s *MemoryStore) Delete(ctx context.Context, userID int64, title string) (int64, error) {
	title = strings.TrimSpace(title)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, movie := range s.movies {
		if movie.UserID == userID && movie.Title == title {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// UpdateRating sets a movie's rating, reporting the affected count.
func (s *MemoryStore) UpdateRating(ctx context.Context, userID int64, title string, rating float64) (int64, error) {
	title = strings.TrimSpace(title)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].UserID == userID && s.movies[i].Title == title {
			s.movies[i].Rating = rating
			return 1, nil
		}
	}
	return 0, nil
}

// UpdateNote sets a movie's note, reporting the affected count.
func (s *MemoryStore) UpdateNote(ctx context.Context, userID int64, title string, note string) (int64, error) {
	title = strings.TrimSpace(title)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movies {
		if s.movies[i].UserID == userID && s.movies[i].Title == title {
			s.movies[i].Note = note
			return 1, nil
		}
	}
	return 0, nil
}
