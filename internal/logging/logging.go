// Package logging configures the process-wide logrus logger.
//
// The terminal belongs to the game screen while it runs, so log output goes
// to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.InfoLevel

// Setup points logrus at path (discarding output when path is empty) and sets
// the level by name. The returned func closes the log file.
func Setup(path, level string) (func() error, error) {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		logrus.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	return func() error {
		logrus.SetOutput(io.Discard)
		return f.Close()
	}, nil
}
