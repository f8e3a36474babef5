package enumlist

import (
	"fmt"
	"reflect"
	"strconv"
)

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// String names the value for humans, e.g. in logs.
// Valid reports whether the value is one of the declared constants.
type Enumerable interface {
	String() string
	Valid() error
}

// Member constrains the types an Enum holds:
// an Enumerable whose underlying type is a string or an integer.
//
// The underlying value, not String, is what gets stored.
type Member interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64

	Enumerable
}

// An Enum is the closed, finite set of members of E, in declaration order.
// An Enum never changes after NewEnum returns it.
type Enum[E Member] struct {
	name    string
	members []E
	index   map[E]int
	text    map[E]string
}

// NewEnum constructs an *Enum from members.
//
// NewEnum returns a *ConfigError if members is empty,
// if a member is repeated,
// or if a member reports itself invalid.
func NewEnum[E Member](members ...E) (*Enum[E], error) {
	var zero E
	name := reflect.TypeOf(zero).String()

	if len(members) == 0 {
		return nil, &ConfigError{Enum: name, Reason: "enum has no members"}
	}

	e := &Enum[E]{
		name:    name,
		members: make([]E, len(members)),
		index:   make(map[E]int, len(members)),
		text:    make(map[E]string, len(members)),
	}
	copy(e.members, members)

	for i, m := range e.members {
		if err := m.Valid(); err != nil {
			return nil, &ConfigError{Enum: name, Reason: fmt.Sprintf("member %s is not valid", m), Cause: err}
		}

		if _, ok := e.index[m]; ok {
			return nil, &ConfigError{Enum: name, Reason: fmt.Sprintf("member %s is declared twice", m)}
		}

		e.index[m] = i
		e.text[m] = valueText(m)
	}

	return e, nil
}

// MustEnum is like NewEnum but panics if the members do not form an Enum.
// It simplifies initializing package-level enum definitions.
func MustEnum[E Member](members ...E) *Enum[E] {
	e, err := NewEnum(members...)
	if err != nil {
		panic(err)
	}

	return e
}

// Name returns the Go type name of E, e.g. "catalog.Genre".
func (e *Enum[E]) Name() string { return e.name }

// Len returns the number of members.
func (e *Enum[E]) Len() int { return len(e.members) }

// Members returns a copy of the members in declaration order.
func (e *Enum[E]) Members() []E {
	out := make([]E, len(e.members))
	copy(out, e.members)
	return out
}

// Contains asserts whether m is one of the members.
func (e *Enum[E]) Contains(m E) bool {
	_, ok := e.index[m]
	return ok
}

// Index returns the declaration position of m, or -1 if m is not a member.
func (e *Enum[E]) Index(m E) int {
	i, ok := e.index[m]
	if !ok {
		return -1
	}

	return i
}

// Text returns the string form of m's underlying value.
//
// For a member declared as
//
//	type Genre int
//	const Jazz Genre = 3
//
// Text(Jazz) is "3", regardless of what Jazz.String returns.
func (e *Enum[E]) Text(m E) string {
	if t, ok := e.text[m]; ok {
		return t
	}

	return valueText(m)
}

func (e *Enum[E]) empty() bool { return e == nil || len(e.members) == 0 }

func valueText[E Member](m E) string {
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	default:
		return strconv.FormatUint(v.Uint(), 10)
	}
}
