package pixelsprite

import (
	"fmt"
)

// ParseError reports a malformed mask: a field that is not an integer,
// a code outside {-1, 0, 1, 2}, or a row whose length differs from the first.
// Line and Field are 1-based; Field is 0 when the whole row is at fault.
type ParseError struct {
	Line  int
	Field int
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field > 0 {
		return fmt.Sprintf("mask: line %d, field %d: %s", e.Line, e.Field, e.Msg)
	}
	return fmt.Sprintf("mask: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a mask source that could not be read.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mask: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfigError reports an invalid generation parameter.
type ConfigError struct {
	Field string
	Value any
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("options: %s = %v: %s", e.Field, e.Value, e.Msg)
}
