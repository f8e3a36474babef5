package enumlist

import (
	"log/slog"
	"strings"
)

const LogKindKey = "kind"

var (
	AppLogKind = slog.StringValue("app")
	DBLogKind  = slog.StringValue("db")
)

// NewLogLevel parses val into a [log/slog.Level].
// Matching is case-insensitive; "FATAL" maps to a level above [log/slog.LevelError].
// Unknown values map to [log/slog.LevelInfo].
func NewLogLevel(val string) slog.Level {
	switch strings.ToUpper(val) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "FATAL":
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
