// Package logging builds the structured logger shared by pinder's packages.
//
// The interactive front end owns the terminal, so nothing may be written to
// stderr while it runs. New therefore writes either to a log file or to the
// writer supplied by the caller (io.Discard for the TUI, stderr for --print).
//
//	logger, closer, err := logging.New(logging.Config{
//	    Level: logging.LevelDebug,
//	    File:  "/tmp/pinder.log",
//	}, io.Discard)
//	if err != nil { ... }
//	defer closer.Close()
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level is a log severity. Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug traces individual searches and board edits.
	LevelDebug Level = iota
	// LevelInfo reports search outcomes.
	LevelInfo
	// LevelWarn reports rejected edits and recoverable problems.
	LevelWarn
	// LevelError reports failures.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive name ("debug", "info", "warn",
// "warning", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures New. The zero value logs Info and above as text.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// JSON selects slog's JSON handler instead of the text handler.
	JSON bool

	// File, when set, receives all output instead of the fallback writer.
	// The parent directory is created if missing and the file is appended to.
	File string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured by cfg. Output goes to cfg.File when set,
// otherwise to fallback (io.Discard if nil). The returned Closer releases
// the log file and is always non-nil.
func New(cfg Config, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if w == nil {
		w = io.Discard
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open log file: %w", err)
		}
		w, closer = f, f
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("app", "pinder"), closer, nil
}

// Discard returns a logger that drops everything. Handy in tests and as a
// default for constructors that accept a nil logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
