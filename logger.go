package fxchain

import (
	"log/slog"
	"sync/atomic"
)

// silent is installed until SetLogger is called. Its handler reports every
// level as disabled, so log calls return before formatting anything.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger configures the package-wide logger used by chains that were not
// given one with WithLogger. By default fxchain produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by fxchain:
//   - [slog.LevelDebug]: chain assembly (inserted conversions, effect tags, shader size)
//   - [slog.LevelInfo]: program linked
//   - [slog.LevelError]: shader compile or link failure, with the driver log
//
// Example:
//
//	fxchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return current.Load()
}
