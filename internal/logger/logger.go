// Package logger holds the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called, so
// packages and tests can log freely without a terminal-corrupting writer.
var Log = newDiscard()

// Options controls logger setup. Empty fields take defaults.
type Options struct {
	Level  string // LOG_LEVEL: debug, info, warn, error (default info)
	Format string // LOG_FORMAT: "json" or "text" (default text)
	File   string // LOG_FILE: destination path (default escapecastle.log)
}

// OptionsFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_FILE.
func OptionsFromEnv() Options {
	return Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	}
}

// Init configures the global logger. The terminal belongs to the game
// screen, so logs always go to a file. The returned closer releases it.
func Init(opts Options) (io.Closer, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	}

	path := opts.File
	if path == "" {
		path = "escapecastle.log"
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	l.SetOutput(f)

	Log = l
	return f, nil
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
