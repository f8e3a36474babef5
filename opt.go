package enumlist

import "log/slog"

// DefaultSeparator joins member values when no WithSeparator option is given.
const DefaultSeparator = ","

// A CodecOption configures a codec when constructing a new one.
type CodecOption func(*codecConfig)

type codecConfig struct {
	sep string
	log *slog.Logger
}

// WithSeparator sets the string placed between member values in stored text.
// The separator must not occur in the value of any member.
func WithSeparator(sep string) CodecOption {
	return func(c *codecConfig) {
		c.sep = sep
	}
}

// WithLogger sets the *slog.Logger a codec reports its configuration to.
func WithLogger(l *slog.Logger) CodecOption {
	return func(c *codecConfig) {
		c.log = l
	}
}
