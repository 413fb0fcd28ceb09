// Package logging constructs the application's slog loggers: a compact
// console format for interactive use and a JSON format for log files and
// machine consumers.
package logging
