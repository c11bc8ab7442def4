package app

import "log/slog"

func logError(msg string, err error) {
	slog.Error(msg, "error", err)
}
