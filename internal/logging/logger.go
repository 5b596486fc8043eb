// Package logging builds the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hamzaimran/bitpro/pkg/config"
)

// New builds a slog.Logger according to the logging config and installs it
// as the default.
func New(cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.Level(cfg.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
