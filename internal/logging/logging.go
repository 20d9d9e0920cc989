// Package logging builds the slog loggers used by the CLI.
// Output fans out to a human-readable stderr handler and, optionally,
// a JSON log file.
package logging

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects handlers and the minimum level.
type Options struct {
	Level slog.Leveler
	Text  io.Writer // Human-readable output, usually stderr (nil = none)
	JSON  io.Writer // Machine-readable output, usually a file (nil = none)
}

// LevelFor maps the CLI verbosity flags to a level.
// Quiet wins over verbose.
func LevelFor(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// New returns a logger writing to every configured destination.
// With no destination it returns a logger that discards everything.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if opts.Text != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Text, handlerOpts))
	}
	if opts.JSON != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.JSON, handlerOpts))
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler)
	case 1:
		return slog.New(handlers[0])
	default:
		return slog.New(slogmulti.Fanout(handlers...))
	}
}
