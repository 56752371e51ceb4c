// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/lvlin/scorer"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// logHook forwards scorer telemetry: calls at debug level, failures as warnings.
func logHook(log *slog.Logger) scorer.Hook {
	return func(ev scorer.Event) {
		attrs := []any{
			slog.String("stage", ev.Stage.String()),
			slog.Int("rows", ev.Rows),
			slog.String("shape", ev.InputShape.String()),
		}
		if ev.Phase == scorer.PhaseStart {
			log.Debug("predict start", attrs...)
			return
		}

		attrs = append(attrs, slog.Int("channels", ev.Channels), slog.Duration("elapsed", ev.Elapsed))
		if ev.Err != nil {
			log.Warn("predict failed", append(attrs, tint.Err(ev.Err))...)
			return
		}
		log.Debug("predict done", attrs...)
	}
}
