package vtcore

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewConsoleLogger builds a human-readable, TTY-aware logger suitable for
// passing to WithLogger during development or CLI tooling built on top of
// this package. It defaults to zerolog's JSON output when w is not a
// terminal, and a colorized console writer when it is.
func NewConsoleLogger(w *os.File, level zerolog.Level) zerolog.Logger {
	var out io.Writer = w
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		out = zerolog.ConsoleWriter{Out: colorable.NewColorable(w)}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
