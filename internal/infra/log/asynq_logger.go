package logs

import (
	"fmt"
	"log/slog"
	"os"
)

// AsynqLogger adapts slog to asynq.Logger.
type AsynqLogger struct {
	logger *slog.Logger
}

// NewAsynqLogger wraps logger for the job server.
func NewAsynqLogger(logger *slog.Logger) *AsynqLogger {
	return &AsynqLogger{logger: logger.With(slog.String("component", "asynq"))}
}

func (l *AsynqLogger) Debug(args ...any) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...any) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...any) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...any) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs and exits, as asynq.Logger requires.
func (l *AsynqLogger) Fatal(args ...any) {
	l.logger.Error(fmt.Sprint(args...), slog.Bool("fatal", true))
	os.Exit(1)
}
