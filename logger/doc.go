/*
Package logger builds the [log/slog.Logger] used by enumlist applications.

[New] picks a handler for the [enumlist.Environment]:
JSON records in deployed environments,
colorized text from github.com/lmittmann/tint in development.
[ColorizeLevel] and [TruncSourceAttr] are the ReplaceAttr funcs it configures.

When SENTRY_DSN is set, [New] wraps the handler in a [SentryHandler]
so records at Error or above also reach Sentry.
*/
package logger
