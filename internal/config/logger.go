package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a text logger on w at the given level
// (DEBUG, INFO, WARN or ERROR). Unknown levels fall back to INFO.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(level)))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
