package enumlist

import (
	"database/sql/driver"
	"sort"

	"github.com/samber/mo"
)

var _ Column = (*SetCodec[Environment])(nil)

// A Set is an unordered collection of distinct values.
type Set[E comparable] map[E]struct{}

// NewSet constructs a Set holding items, collapsing repeats.
// NewSet never returns nil.
func NewSet[E comparable](items ...E) Set[E] {
	s := make(Set[E], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

// Add puts item in s.
func (s Set[E]) Add(item E) { s[item] = struct{}{} }

// Has asserts whether item is in s.
func (s Set[E]) Has(item E) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items in s.
func (s Set[E]) Len() int { return len(s) }

// A SetCodec stores a Set[E] as the values of its members joined by a separator.
//
// Members are written in the enum's declaration order
// so equal sets always produce equal text.
//
// A SetCodec holds only immutable configuration and is safe for concurrent use.
type SetCodec[E Member] struct {
	codec[E]
}

// NewSetCodec constructs a *SetCodec. It validates its arguments exactly as NewListCodec does.
func NewSetCodec[E Member](enum *Enum[E], coerce Coerce[E], opts ...CodecOption) (*SetCodec[E], error) {
	c, err := newCodec("set", enum, coerce, opts)
	if err != nil {
		return nil, err
	}

	return &SetCodec[E]{c}, nil
}

// Encode joins the values of the members of set.
//
// A nil set encodes to mo.None, standing for NULL.
// An empty, non-nil set encodes to the empty string.
// If an item is not a member of the enum, Encode returns a *ValidationError.
func (c *SetCodec[E]) Encode(set Set[E]) (mo.Option[string], error) {
	if set == nil {
		return mo.None[string](), nil
	}

	items := make([]E, 0, len(set))
	for item := range set {
		if !c.enum.Contains(item) {
			return mo.None[string](), &ValidationError{Enum: c.enum.Name(), Value: set}
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return c.enum.Index(items[i]) < c.enum.Index(items[j])
	})

	text, err := c.join(items, set)
	if err != nil {
		return mo.None[string](), err
	}

	return mo.Some(text), nil
}

// Decode splits text into a Set[E]; repeated tokens collapse.
//
// mo.None decodes to a nil Set.
// The empty string decodes to an empty, non-nil Set.
// If a token does not map onto a member, Decode returns a *DecodeError.
func (c *SetCodec[E]) Decode(text mo.Option[string]) (Set[E], error) {
	s, ok := text.Get()
	if !ok {
		return nil, nil
	}

	if s == "" {
		return Set[E]{}, nil
	}

	items, err := c.split(s)
	if err != nil {
		return nil, err
	}

	return NewSet(items...), nil
}

// Bind accepts a Set[E], a *Set[E], a []E, an mo.Option[Set[E]] or nil.
// Repeats in a []E collapse.
//
// Bind implements Column.
func (c *SetCodec[E]) Bind(value any) (driver.Value, error) {
	var set Set[E]
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Set[E]:
		set = v
	case *Set[E]:
		if v == nil {
			return nil, nil
		}
		set = *v
	case []E:
		if v != nil {
			set = NewSet(v...)
		}
	case mo.Option[Set[E]]:
		set = v.OrEmpty()
	default:
		return nil, &ValidationError{Enum: c.enum.Name(), Value: value}
	}

	text, err := c.Encode(set)
	if err != nil {
		return nil, err
	}

	s, ok := text.Get()
	if !ok {
		return nil, nil
	}

	return s, nil
}

// Result reads src into a Set[E].
//
// Result implements Column.
func (c *SetCodec[E]) Result(src any) (any, error) {
	text, ok, err := c.storedText(src)
	if err != nil {
		return nil, err
	}

	if !ok {
		return Set[E](nil), nil
	}

	return c.Decode(mo.Some(text))
}
