package log

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Init installs the default slog logger for the CLI: a colorized tint handler
// when stderr is a terminal, the plain text handler otherwise. Debug level is
// enabled by the debug argument or the DEBUG environment variable.
func Init(debug bool) {
	level := slog.LevelInfo
	if debug || debugFromEnv() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("logger initialized")
}

func debugFromEnv() bool {
	debugValues := []string{"1", "true", "yes"}
	return slices.Contains(debugValues, strings.ToLower(os.Getenv("DEBUG")))
}
