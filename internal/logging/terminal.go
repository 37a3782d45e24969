package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler returns a slog handler writing to w, colorized when w
// is an interactive terminal and plain otherwise.
func NewTerminalHandler(w *os.File) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		NoColor:    !isatty.IsTerminal(w.Fd()),
		TimeFormat: time.Kitchen,
	})
}

// NewLogger returns a logger backed by NewTerminalHandler.
func NewLogger(w *os.File) *slog.Logger {
	return slog.New(NewTerminalHandler(w))
}
