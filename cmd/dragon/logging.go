package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	logDirName  = "flappy-dragon"
	logFileName = "dragon.log"
)

// openLogger writes to a file in the user cache directory since the
// terminal belongs to the game. Without a writable cache directory logs are
// discarded.
func openLogger() (*log.Logger, func()) {
	w, closeFn := logWriter()
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           logLevel(),
	})
	return logger, closeFn
}

func logWriter() (io.Writer, func()) {
	path, err := logPath()
	if err != nil {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }
}

func logPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logDirName, logFileName), nil
}

// logLevel reads DRAGON_LOG_LEVEL, defaulting to info.
func logLevel() log.Level {
	lvl, err := log.ParseLevel(os.Getenv("DRAGON_LOG_LEVEL"))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
