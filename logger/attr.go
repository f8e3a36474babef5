package logger

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
)

// ColorizeLevel colors the level of a record by its severity.
// ColorizeLevel is a ReplaceAttr func for slog.HandlerOptions and similar.
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	var colorizer func(string, ...any) string
	switch {
	case lvl >= slog.LevelError:
		colorizer = color.RedString
	case lvl >= slog.LevelWarn:
		colorizer = color.YellowString
	case lvl >= slog.LevelInfo:
		colorizer = color.BlueString
	default:
		colorizer = color.WhiteString
	}

	a.Value = slog.StringValue(colorizer("%s", lvl))
	return a
}

// TruncSourceAttr shortens the source of a record to its parent directory, file and line, e.g.:
//
//	/home/dlk/enumlist/postgres/db.go:42 => postgres/db.go:42
//
// TruncSourceAttr is a ReplaceAttr func for slog.HandlerOptions and similar.
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	dir, file := filepath.Split(src.File)
	a.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(dir), file), src.Line))
	return a
}
