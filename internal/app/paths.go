// Package app provides process-level helpers shared by the commands.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"climb-routes/internal/logging"
	"climb-routes/internal/route"
)

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so a linked binary finds files next to the real one.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}
	return filepath.Dir(execPath), nil
}

// DefaultCachePath is the route cache next to the executable.
func DefaultCachePath() string {
	dir, err := ExecutableDir()
	if err != nil {
		return route.CacheFilename
	}
	return filepath.Join(dir, route.CacheFilename)
}

// SetupLogging routes the library logger to stderr at debug level when
// verbose, and silences it otherwise.
func SetupLogging(verbose bool) {
	if !verbose {
		logging.SetLogger(nil)
		return
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
