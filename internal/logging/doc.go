// Package logging constructs slog loggers for movieshelf.
//
// Output goes to the terminal and, when a log directory is configured, to
// movieshelf.log inside it. The console format favors readability; the json
// format emits one object per line with lowercase level names and RFC3339
// timestamps.
package logging
