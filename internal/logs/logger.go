package logs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	Logger zerolog.Logger
	output io.Writer = os.Stderr
	mu     sync.Mutex
)

// This runs automatically when the package is imported.
// Logs warnings and above to stderr until Initialize is called.
func init() {
	Logger = newLogger(output, zerolog.WarnLevel)
}

// Initialize reconfigures the logger for the given level name
// (trace, debug, info, warning, error). An empty name keeps the default.
func Initialize(level string) error {
	mu.Lock()
	defer mu.Unlock()

	if level == "" {
		return nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	Logger = newLogger(output, lvl)
	Logger.Debug().Str("level", lvl.String()).Msg("logger initialized")
	return nil
}

// SetOutput redirects log output, keeping the current level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	Logger = newLogger(w, Logger.GetLevel())
}

// ParseLevel maps a level name to a zerolog level. "warning" is accepted for "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
	}
	return lvl, nil
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	if f, ok := w.(*os.File); ok && (f == os.Stderr || f == os.Stdout) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
