package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/xy-planning-network/enumlist"
)

const (
	LogJSONEnvVar   = "LOG_JSON"
	LogLevelEnvVar  = "LOG_LEVEL"
	SentryDSNEnvVar = "SENTRY_DSN"

	defaultLogLevel = slog.LevelInfo
	devTimeFormat   = "2006-01-02 15:04:05.000"
)

// New constructs a *slog.Logger of the given kind writing to out,
// with every record carrying the kind under [enumlist.LogKindKey].
//
// Outside of Development, or when LOG_JSON is "true", records are JSON.
// In Development, records are colorized text.
// LOG_LEVEL sets the minimum level, Info by default.
// When SENTRY_DSN is set, records at Error or above are also sent to Sentry.
func New(kind slog.Value, env enumlist.Environment, out io.Writer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(enumlist.EnvVarOrLogLevel(LogLevelEnvVar, defaultLogLevel))

	handler := NewHandler(env, out, lvl, enumlist.EnvVarOrBool(LogJSONEnvVar, false))

	if dsn := os.Getenv(SentryDSNEnvVar); dsn != "" {
		sh, err := NewSentryHandler(handler, sentry.ClientOptions{
			Dsn:         dsn,
			Environment: env.String(),
		})
		if err != nil {
			slog.New(handler).Error("unable to init Sentry", slog.Any("error", err))
		} else {
			handler = sh
		}
	}

	return slog.New(handler).With(slog.Attr{Key: enumlist.LogKindKey, Value: kind})
}

// NewHandler constructs the slog.Handler New uses.
func NewHandler(env enumlist.Environment, out io.Writer, lvl slog.Leveler, forceJSON bool) slog.Handler {
	if forceJSON || !env.IsDevelopment() {
		return slog.NewJSONHandler(out, &slog.HandlerOptions{
			AddSource:   true,
			Level:       lvl,
			ReplaceAttr: TruncSourceAttr,
		})
	}

	return tint.NewHandler(out, &tint.Options{
		AddSource:  true,
		Level:      lvl,
		TimeFormat: devTimeFormat,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a = ColorizeLevel(groups, a)
			return TruncSourceAttr(groups, a)
		},
	})
}
