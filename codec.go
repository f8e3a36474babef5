package enumlist

import (
	"database/sql/driver"
	"fmt"
	"log/slog"
	"strings"
)

// A Column converts between an application value and the text stored for it.
// A persistence layer calls Bind when writing a parameter
// and Result when reading a column back.
//
// *ListCodec and *SetCodec implement Column.
type Column interface {
	// Bind returns the stored form of value: nil or a string.
	Bind(value any) (driver.Value, error)

	// Result returns the application value for src: nil, a string or a []byte.
	Result(src any) (any, error)
}

// codec holds what ListCodec and SetCodec share: the validated configuration
// and the token-level encode and decode steps.
type codec[E Member] struct {
	enum   *Enum[E]
	coerce Coerce[E]
	sep    string
}

func newCodec[E Member](kind string, enum *Enum[E], coerce Coerce[E], opts []CodecOption) (codec[E], error) {
	cfg := codecConfig{sep: DefaultSeparator, log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if enum.empty() {
		var zero E
		return codec[E]{}, &ConfigError{Enum: fmt.Sprintf("%T", zero), Reason: "not an enumerated type, construct one with NewEnum"}
	}

	if coerce == nil {
		return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: "missing coerce func"}
	}

	if cfg.sep == "" {
		return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: "separator must not be empty"}
	}

	for _, m := range enum.members {
		text := enum.Text(m)
		if text == "" {
			reason := fmt.Sprintf("member %s has an empty value, which cannot be told apart from an empty collection", m)
			return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: reason}
		}

		if strings.Contains(text, cfg.sep) {
			reason := fmt.Sprintf(
				"member %s can't contain string %q, it is being used as separator; "+
					"if you wish for enum values to contain this string, use a different separator",
				m, cfg.sep,
			)
			return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: reason}
		}

		got, err := coerce(text)
		if err != nil {
			reason := fmt.Sprintf("member %s cannot be coerced", m)
			return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: reason, Cause: err}
		}

		if got != m {
			reason := fmt.Sprintf("member %s coerces from %q into %v, not itself", m, text, got)
			return codec[E]{}, &ConfigError{Enum: enum.Name(), Reason: reason}
		}
	}

	if cfg.log != nil {
		cfg.log.Debug(
			"configured enum codec",
			slog.String("codec", kind),
			slog.String("enum", enum.Name()),
			slog.String("separator", cfg.sep),
			slog.Int("members", enum.Len()),
		)
	}

	return codec[E]{enum: enum, coerce: coerce, sep: cfg.sep}, nil
}

// join validates every item and joins their texts in the order given.
func (c codec[E]) join(items []E, orig any) (string, error) {
	texts := make([]string, len(items))
	for i, item := range items {
		if !c.enum.Contains(item) {
			return "", &ValidationError{Enum: c.enum.Name(), Value: orig}
		}

		texts[i] = c.enum.Text(item)
	}

	return strings.Join(texts, c.sep), nil
}

// split decodes non-empty text into members in stored order.
func (c codec[E]) split(text string) ([]E, error) {
	tokens := strings.Split(text, c.sep)
	items := make([]E, len(tokens))
	for i, token := range tokens {
		m, err := c.member(token)
		if err != nil {
			return nil, err
		}

		items[i] = m
	}

	return items, nil
}

func (c codec[E]) member(token string) (E, error) {
	m, err := c.coerce(token)
	if err != nil {
		return m, &DecodeError{Enum: c.enum.Name(), Token: token, Err: ErrNotValid, Cause: err}
	}

	if !c.enum.Contains(m) {
		var zero E
		return zero, &DecodeError{Enum: c.enum.Name(), Token: token, Err: ErrNotExist}
	}

	return m, nil
}

// storedText reads src as handed over by a database driver.
func (c codec[E]) storedText(src any) (text string, ok bool, err error) {
	switch v := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, &DecodeError{
			Enum:  c.enum.Name(),
			Token: fmt.Sprint(src),
			Err:   ErrNotValid,
			Cause: fmt.Errorf("unsupported stored type %T", src),
		}
	}
}

// Enum returns the enum the codec encodes.
func (c codec[E]) Enum() *Enum[E] { return c.enum }

// Separator returns the string placed between member values.
func (c codec[E]) Separator() string { return c.sep }

// Member coerces a single stored token and looks it up in the enum.
//
// Member returns a *DecodeError wrapping ErrNotValid if token cannot be coerced
// and one wrapping ErrNotExist if the coerced value is not a member.
func (c codec[E]) Member(token string) (E, error) { return c.member(token) }
