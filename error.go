package enumlist

import (
	"errors"
	"fmt"
)

var (
	ErrBadConfig  = errors.New("bad config")
	ErrExists     = errors.New("exists")
	ErrNotExist   = errors.New("not exist")
	ErrNotFound   = errors.New("not found")
	ErrNotValid   = errors.New("invalid")
	ErrUnexpected = errors.New("unexpected")
)

// A ConfigError reports a codec or enum that cannot be constructed.
// It is returned once, at construction; the caller must fix the configuration and retry.
//
// ConfigError unwraps to ErrBadConfig.
type ConfigError struct {
	Enum   string // name of the enum type being configured
	Reason string
	Cause  error // underlying failure, e.g. from a coercion func
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrBadConfig, e.Reason)
	if e.Enum != "" {
		msg = fmt.Sprintf("%s: %s: %s", ErrBadConfig, e.Enum, e.Reason)
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *ConfigError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrBadConfig}
	}

	return []error{ErrBadConfig, e.Cause}
}

// A ValidationError reports a value that cannot be encoded,
// either because an item is not a member of the enum
// or because the value is not a collection the codec handles.
//
// ValidationError unwraps to ErrNotValid.
type ValidationError struct {
	Enum  string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: values have to be members of %s, got %v (%T)", ErrNotValid, e.Enum, e.Value, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrNotValid }

// A DecodeError reports stored text that does not map back onto the enum.
//
// Err is ErrNotExist when a token coerced cleanly but names no member,
// and ErrNotValid when the token or the stored value could not be read at all.
type DecodeError struct {
	Enum  string
	Token string
	Err   error
	Cause error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s: cannot decode %q into %s", e.Err, e.Token, e.Enum)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}
