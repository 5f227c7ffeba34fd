package library

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"movieshelf/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// SQLiteStore is the durable Store implementation backed by sqlite.
type SQLiteStore struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite initializes or connects to the library database. A file lock
// beside the database enforces the single-writer assumption; a second
// process fails here instead of corrupting writes.
func OpenSQLite(cfg *config.Config) (*SQLiteStore, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("library %s is in use by another movieshelf process", filepath.Dir(dbPath))
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the library lock.
func (s *SQLiteStore) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to start over)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *SQLiteStore) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// ListUsers returns all users in creation order.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user and returns it with its assigned id.
func (s *SQLiteStore) CreateUser(ctx context.Context, name string) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, errors.New("user name must not be empty")
	}
	res, err := s.db.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, fmt.Errorf("%w: %s", ErrDuplicateUser, name)
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("last insert id: %w", err)
	}
	return User{ID: id, Name: name}, nil
}

// GetUserByName fetches a user by exact name. Returns (nil, nil) when absent.
func (s *SQLiteStore) GetUserByName(ctx context.Context, name string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name FROM users WHERE name = ?`, strings.TrimSpace(name))
	var user User
	err := row.Scan(&user.ID, &user.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

const movieColumns = "id, user_id, title, year, rating, poster, note"

// List returns the user's movies in insertion order. An empty collection is
// an empty slice, not an error.
func (s *SQLiteStore) List(ctx context.Context, userID int64) ([]Movie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	movies := []Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// Add inserts a movie for the user. The insert is one statement; a duplicate
// (user, title) pair fails with ErrDuplicateTitle and writes nothing.
func (s *SQLiteStore) Add(ctx context.Context, userID int64, title string, year int, rating float64, poster string) (Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Movie{}, errors.New("movie title must not be empty")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO movies (user_id, title, year, rating, poster) VALUES (?, ?, ?, ?, ?)`,
		userID, title, year, rating, nullableString(poster))
	if err != nil {
		if isUniqueViolation(err) {
			return Movie{}, fmt.Errorf("%w: %s", ErrDuplicateTitle, title)
		}
		return Movie{}, fmt.Errorf("insert movie: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Movie{}, fmt.Errorf("last insert id: %w", err)
	}
	return Movie{ID: id, UserID: userID, Title: title, Year: year, Rating: rating, Poster: poster}, nil
}

// Delete removes a movie by title and reports how many rows went away (0 or 1).
func (s *SQLiteStore) Delete(ctx context.Context, userID int64, title string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM movies WHERE user_id = ? AND title = ?`, userID, strings.TrimSpace(title))
	if err != nil {
		return 0, fmt.Errorf("delete movie: %w", err)
	}
	return res.RowsAffected()
}

// UpdateRating sets a movie's rating and reports the affected row count.
func (s *SQLiteStore) UpdateRating(ctx context.Context, userID int64, title string, rating float64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET rating = ? WHERE user_id = ? AND title = ?`,
		rating, userID, strings.TrimSpace(title))
	if err != nil {
		return 0, fmt.Errorf("update rating: %w", err)
	}
	return res.RowsAffected()
}

// UpdateNote sets a movie's free-text note and reports the affected row count.
func (s *SQLiteStore) UpdateNote(ctx context.Context, userID int64, title string, note string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET note = ? WHERE user_id = ? AND title = ?`,
		nullableString(note), userID, strings.TrimSpace(title))
	if err != nil {
		return 0, fmt.Errorf("update note: %w", err)
	}
	return res.RowsAffected()
}

func scanMovie(scanner interface{ Scan(dest ...any) error }) (Movie, error) {
	var (
		movie  Movie
		poster sql.NullString
		note   sql.NullString
	)
	if err := scanner.Scan(&movie.ID, &movie.UserID, &movie.Title, &movie.Year, &movie.Rating, &poster, &note); err != nil {
		return Movie{}, err
	}
	movie.Poster = poster.String
	movie.Note = note.String
	return movie, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
