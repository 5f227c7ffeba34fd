// Package normalize converts raw OMDb record fields into typed, validated
// movie values.
//
// Unparsable or "N/A" fields fall back to an interactive Prompter bounded to
// the configured valid ranges; with no prompter available the conversion
// fails with ErrUnusableField. Ratings are rounded to one decimal place
// before they reach the store.
package normalize
