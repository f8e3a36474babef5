package enumlist

import (
	"database/sql/driver"

	"github.com/samber/mo"
)

var _ Column = (*ListCodec[Environment])(nil)

// A ListCodec stores an ordered []E as the values of its members joined by a separator.
//
// For example, with members Pop = 1 and Jazz = 3 and the default separator,
// []Genre{Jazz, Pop} is stored as "3,1".
//
// A ListCodec holds only immutable configuration and is safe for concurrent use.
type ListCodec[E Member] struct {
	codec[E]
}

// NewListCodec constructs a *ListCodec for enum, reading stored tokens back with coerce.
//
// NewListCodec returns a *ConfigError if enum is nil or empty,
// if the separator is empty or occurs in the value of a member,
// or if coerce fails on, or does not round-trip, the value of a member.
func NewListCodec[E Member](enum *Enum[E], coerce Coerce[E], opts ...CodecOption) (*ListCodec[E], error) {
	c, err := newCodec("list", enum, coerce, opts)
	if err != nil {
		return nil, err
	}

	return &ListCodec[E]{c}, nil
}

// Encode joins the values of items in order.
//
// A nil items encodes to mo.None, standing for NULL.
// An empty, non-nil items encodes to the empty string.
// If an item is not a member of the enum, Encode returns a *ValidationError.
func (c *ListCodec[E]) Encode(items []E) (mo.Option[string], error) {
	if items == nil {
		return mo.None[string](), nil
	}

	text, err := c.join(items, items)
	if err != nil {
		return mo.None[string](), err
	}

	return mo.Some(text), nil
}

// Decode splits text into members, preserving order and repeats.
//
// mo.None decodes to a nil []E.
// The empty string decodes to an empty, non-nil []E.
// If a token does not map onto a member, Decode returns a *DecodeError.
func (c *ListCodec[E]) Decode(text mo.Option[string]) ([]E, error) {
	s, ok := text.Get()
	if !ok {
		return nil, nil
	}

	if s == "" {
		return []E{}, nil
	}

	return c.split(s)
}

// Bind accepts a []E, a *[]E, an mo.Option[[]E] or nil.
//
// Bind implements Column.
func (c *ListCodec[E]) Bind(value any) (driver.Value, error) {
	var items []E
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []E:
		items = v
	case *[]E:
		if v == nil {
			return nil, nil
		}
		items = *v
	case mo.Option[[]E]:
		items = v.OrEmpty()
	default:
		return nil, &ValidationError{Enum: c.enum.Name(), Value: value}
	}

	text, err := c.Encode(items)
	if err != nil {
		return nil, err
	}

	s, ok := text.Get()
	if !ok {
		return nil, nil
	}

	return s, nil
}

// Result reads src into a []E.
//
// Result implements Column.
func (c *ListCodec[E]) Result(src any) (any, error) {
	text, ok, err := c.storedText(src)
	if err != nil {
		return nil, err
	}

	if !ok {
		return []E(nil), nil
	}

	return c.Decode(mo.Some(text))
}
