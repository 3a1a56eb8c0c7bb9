// Package log provides the engine's single shared zerolog logger. The
// level is read from $ZKBOO_LOG_LEVEL once at process start; tests that
// want quieter or noisier output set the env var rather
// than threading a logger through every call.
package log

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("ZKBOO_LOG_LEVEL")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

// Logger returns the shared logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &logger
}

// SetLevel overrides the shared logger's level, used by tests that want
// to silence or expand logging in a single package.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}
