// Package ext implements the extension unit host: a registry of named
// loadable units, each exposing arity-checked operations invoked through
// a small tagged-value ABI.
package ext

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindText
	KindInt
)

// String returns the kind name used in errors and CLI output.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged value passed across the operation boundary.
// The zero Value is None.
type Value struct {
	kind ValueKind
	str  string
	num  int64
}

// None returns the empty value.
func None() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Kind reports the value's discriminant.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string payload; ok is false if the value is not text.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindText
}

// Int returns the integer payload; ok is false if the value is not an int.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == KindInt
}

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	default:
		return "none"
	}
}

// ParseValue converts a CLI argument into a Value: integers parse as int,
// everything else is text.
func ParseValue(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	return Text(s)
}
