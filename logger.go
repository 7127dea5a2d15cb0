package main

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// nopHandler drops every record. The terminal is owned by the program, so
// nothing is logged unless a log file is configured.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// setupLogger returns the logger for the session and a closer for the
// underlying file, if any.
func setupLogger(config *Config) (*slog.Logger, io.Closer, error) {
	if config.LogFile == "" {
		return newNopLogger(), nil, nil
	}
	f, err := tea.LogToFile(config.LogFile, "shapedemo")
	if err != nil {
		return newNopLogger(), nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
