package logger

import (
	"os"
	"strings"

	"churchdata/internal/app/server/config"

	"golang.org/x/exp/slog"
)

type Option func(*options)

type options struct {
	level *slog.Level
}

// WithLevel переопределяет уровень, выбранный по окружению. Пустая строка игнорируется.
func WithLevel(level string) Option {
	return func(o *options) {
		if lvl, ok := parseLevel(level); ok {
			o.level = &lvl
		}
	}
}

// New создает логгер для окружения: local - цветной вывод, dev - JSON c debug, prod - JSON c info
func New(env string, opts ...Option) *slog.Logger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var log *slog.Logger
	switch env {
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: o.pick(slog.LevelInfo)}))
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: o.pick(slog.LevelDebug)}))
	default:
		log = setupPrettySlog(o.pick(slog.LevelDebug))
	}

	return log
}

func (o *options) pick(def slog.Level) slog.Level {
	if o.level != nil {
		return *o.level
	}
	return def
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}

	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// Err - атрибут для ошибки
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
