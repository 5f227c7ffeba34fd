// Package omdb queries the OMDb API (http://www.omdbapi.com/) for movie
// metadata by title.
//
// A title the source does not know is a normal nil result, not an error.
// Transport failures, timeouts, non-2xx statuses, and malformed payloads
// surface as errors wrapping ErrUnavailable. Records carry the raw string
// fields exactly as returned; package normalize turns them into typed values.
package omdb
