// Package logutil configures the process-wide logger. The core packages
// never log; logging is strictly an application-layer concern.
package logutil

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 2
	maxAgeDays = 60
)

// Init points the default slog logger at a size-capped, rotating log file
// so that TUI output is never interleaved with diagnostics.
func Init(pathToLog string) {
	w := &lumberjack.Logger{
		Filename:   pathToLog,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}
