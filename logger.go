package clipmask

import (
	"log/slog"

	"github.com/gogpu/clipmask/internal/logging"
)

// SetLogger configures the logger for clipmask and all its sub-packages.
// By default, clipmask produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior. A resource.Cache created with resource.WithLogger keeps
// its own logger.
//
// Log levels used by clipmask:
//   - [slog.LevelDebug]: local bounds computation, stale store handles,
//     texture builds
//   - [slog.LevelWarn]: failed image requests and uploads
//
// Example:
//
//	clipmask.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by clipmask.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
