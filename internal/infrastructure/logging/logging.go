// Package logging configures the process-wide charmbracelet logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Setup builds a logger writing to w at the given level ("debug", "info",
// "warn", "error") and installs it as the package default.
func Setup(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "flappy",
	})
	log.SetDefault(l)
	return l, nil
}
