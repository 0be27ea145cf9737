package postgres

import (
	"context"
	"log/slog"
	"time"

	"hail/config"

	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger interface onto slog so SQL logs share
// the service's structured output.
type gormSlogLogger struct {
	logger   *slog.Logger
	logLevel gormlogger.LogLevel
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		logger:   logger,
		logLevel: level,
	}
}

// LogMode implements gormlogger.Interface.
func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level

	return &clone
}

// Info implements gormlogger.Interface.
func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= gormlogger.Info {
		l.logger.InfoContext(ctx, msg, slog.Any("args", args))
	}
}

// Warn implements gormlogger.Interface.
func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.WarnContext(ctx, msg, slog.Any("args", args))
	}
}

// Error implements gormlogger.Interface.
func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.logLevel >= gormlogger.Error {
		l.logger.ErrorContext(ctx, msg, slog.Any("args", args))
	}
}

// Trace implements gormlogger.Interface.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && l.logLevel >= gormlogger.Error:
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "SQL error", attrs...)
	case elapsed >= slowQueryThreshold && l.logLevel >= gormlogger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow SQL", attrs...)
	case l.logLevel >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "SQL", attrs...)
	}
}
