package logging

import (
	"cmp"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/docker/toggle/pkg/paths"
)

// DefaultFileName is the debug log file name inside the data directory.
const DefaultFileName = "toggle.debug.log"

// DefaultPath returns where debug logs go when no path is given.
func DefaultPath() string {
	return filepath.Join(paths.GetDataDir(), DefaultFileName)
}

// Setup installs the default slog logger.
//
// Without debug, logs are discarded so they never break the TUI. With debug,
// they are written to a rotating file at path (DefaultPath when empty). The
// returned closer is nil when nothing needs closing.
func Setup(debug bool, path string) (io.Closer, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil, nil
	}

	logFile, err := NewRotatingFile(cmp.Or(strings.TrimSpace(path), DefaultPath()))
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return logFile, nil
}

// SetupFallback logs to w, used when the log file cannot be opened.
func SetupFallback(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
