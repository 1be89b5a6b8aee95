package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the process logger writing to w. LOG_LEVEL selects the
// level (debug, info, warn, error); unknown values keep info.
func NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "firedodge",
	})
	if lvl, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// OpenLogFile opens LOG_FILE for appending. Without LOG_FILE logs are
// discarded, since the terminal front end owns stdout.
func OpenLogFile() (io.WriteCloser, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
