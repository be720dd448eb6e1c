package log

import (
	"context"
	"log/slog"
	"sync"
)

var (
	mu        sync.Mutex
	handler   = NewHandler()
	logger    = slog.New(handler)
	verbosity int
)

// SetVerbosity sets the diagnostics level: 0 silent, 1 verbose (-v),
// 2 very verbose (-vv). Values outside that range are clamped.
func SetVerbosity(v int) {
	mu.Lock()
	defer mu.Unlock()
	switch {
	case v <= 0:
		verbosity = 0
		handler.setLevel(slog.LevelInfo)
	case v == 1:
		verbosity = 1
		handler.setLevel(slog.LevelDebug)
	default:
		verbosity = 2
		handler.setLevel(LevelTrace)
	}
}

// Verbosity returns the current diagnostics level.
func Verbosity() int {
	mu.Lock()
	defer mu.Unlock()
	return verbosity
}

// Verbose emits a diagnostic visible at -v and above.
func Verbose(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// VerboseVV emits a diagnostic visible only at -vv.
func VerboseVV(msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}
