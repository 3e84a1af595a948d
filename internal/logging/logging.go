// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config level name to a log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// New returns a logger writing to w and, when logFile is set, appending to
// that file as well. The returned close func releases the file.
func New(w io.Writer, level, logFile string) (*log.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() error { return nil }
	out := w
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		// write to both so interactive runs still show logs
		out = io.MultiWriter(w, f)
		closeFn = f.Close
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		Prefix:          "asoscreen",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
