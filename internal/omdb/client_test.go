package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movieshelf/internal/omdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := omdb.New("", "http://example.com"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "key" {
			t.Fatalf("expected apikey query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("t") != "Batman" {
			t.Fatalf("expected title query parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Title":"Batman","Year":"1989","imdbRating":"7.5","Poster":"http://img/batman.jpg"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	record, err := client.Fetch(context.Background(), "Batman")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if record == nil || record.Title != "Batman" || record.Year != "1989" || record.ImdbRating != "7.5" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestFetchNotFoundIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	record, err := client.Fetch(context.Background(), "No Such Movie")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil record for unknown title, got %#v", record)
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Fetch(context.Background(), "Batman")
	if !errors.Is(err, omdb.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Fetch(context.Background(), "Batman")
	if !errors.Is(err, omdb.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := omdb.New("key", server.URL, omdb.WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	_, err = client.Fetch(context.Background(), "Batman")
	if !errors.Is(err, omdb.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on timeout, got %v", err)
	}
}

func TestFetchEmptyTitle(t *testing.T) {
	client, err := omdb.New("key", "http://example.com")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Fetch(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty title")
	}
}
