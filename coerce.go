package enumlist

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// A Coerce converts a token read from storage into a value of E
// that can then be looked up in an Enum.
//
// A Coerce must accept Enum.Text(m) for every member m and return m.
type Coerce[E Member] func(token string) (E, error)

// Int parses token as a base-10 signed integer into E.
// Surrounding spaces are ignored.
func Int[E Member](token string) (E, error) {
	var m E
	v := reflect.ValueOf(&m).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return m, fmt.Errorf("%w: cannot coerce into %T, not an integer kind", ErrNotValid, m)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return m, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	if v.OverflowInt(n) {
		return m, fmt.Errorf("%w: %d overflows %T", ErrNotValid, n, m)
	}

	v.SetInt(n)
	return m, nil
}

// Uint parses token as a base-10 unsigned integer into E.
// Surrounding spaces are ignored.
func Uint[E Member](token string) (E, error) {
	var m E
	v := reflect.ValueOf(&m).Elem()
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return m, fmt.Errorf("%w: cannot coerce into %T, not an unsigned integer kind", ErrNotValid, m)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(token), 10, 64)
	if err != nil {
		return m, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	if v.OverflowUint(n) {
		return m, fmt.Errorf("%w: %d overflows %T", ErrNotValid, n, m)
	}

	v.SetUint(n)
	return m, nil
}

// String converts token into E unchanged.
func String[E Member](token string) (E, error) {
	var m E
	v := reflect.ValueOf(&m).Elem()
	if v.Kind() != reflect.String {
		return m, fmt.Errorf("%w: cannot coerce into %T, not a string kind", ErrNotValid, m)
	}

	v.SetString(token)
	return m, nil
}
