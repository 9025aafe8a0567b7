// Package logx configures the process-wide slog logger and offers small
// helpers for logging errors at call sites that cannot return them.
package logx

import (
	"io"
	"log/slog"
)

// Setup installs a text logger writing to w as the slog default. Pass a
// *slog.LevelVar to change the level later.
func Setup(w io.Writer, level slog.Leveler) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// Log logs err if it is non-nil and returns it unchanged:
//
//	return logx.Log(save())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
