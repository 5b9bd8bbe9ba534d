package logging

import (
	"io"
	"log/slog"
	"os"
)

var (
	// Logger receives resolution traces. Until Setup runs it writes text
	// at Info level to stderr.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Verbose reports whether debug traces are enabled.
	Verbose bool
)

// Setup points Logger at w. Verbose lowers the level to Debug and
// jsonOutput writes one JSON object per record. A nil w means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	Verbose = verbose
	Logger = slog.New(newHandler(w, jsonOutput, levelFor(verbose)))
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func newHandler(w io.Writer, jsonOutput bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Debug traces a resolution step. Dropped unless verbose.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn reports a problem resolution recovers from, such as an override
// that exists but cannot be read.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
