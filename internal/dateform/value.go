package dateform

import (
	"strconv"
	"time"
)

// Date is the point in time a template is rendered against. time.Time
// satisfies it.
type Date interface {
	Year() int
	Month() time.Month
	Day() int
	Weekday() time.Weekday
	Hour() int
	Minute() int
	Second() int
	Nanosecond() int
	UnixMilli() int64
	Zone() (name string, offset int)
}

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindNested:
		return "nested"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is what a Generator produces: a string, an integer, or a nested token
// sequence that is rendered recursively against the same date.
type Value struct {
	kind   Kind
	text   string
	number int64
	tokens Tokens
}

// Text wraps a string result.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps an integer result. It renders in base 10 with no padding.
func Number(n int64) Value {
	return Value{kind: KindNumber, number: n}
}

// Nested wraps a token sequence for alias codes.
func Nested(tokens ...Token) Value {
	return Value{kind: KindNested, tokens: tokens}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Tokens returns a copy of the nested sequence, or nil for scalar values.
func (v Value) Tokens() Tokens {
	if v.kind != KindNested {
		return nil
	}
	return append(Tokens(nil), v.tokens...)
}

// Scalar returns the text form of a text or number value. Nested values
// report false since they need a dialect to render.
func (v Value) Scalar() (string, bool) {
	switch v.kind {
	case KindText:
		return v.text, true
	case KindNumber:
		return strconv.FormatInt(v.number, 10), true
	}
	return "", false
}

// Generator computes a code's value from a date.
type Generator func(Date) Value

// Const returns a generator that always yields s.
func Const(s string) Generator {
	return func(Date) Value { return Text(s) }
}

// Alias returns a generator that expands to tokens, which must only reference
// codes from the same dialect.
func Alias(tokens ...Token) Generator {
	v := Nested(append(Tokens(nil), tokens...)...)
	return func(Date) Value { return v }
}
