package dateform

import (
	"strings"
	"unicode/utf8"
)

// MaxPad bounds the width a pad flag will grow a value to.
const MaxPad = 1 << 12

// Flag is a directive modifier. It either pads the value on the left with a
// fixed character or transforms the value with a function.
type Flag struct {
	pad       rune
	transform func(s string, pad int) string
}

// PadWith returns a flag that left-pads to the directive's pad width using r.
func PadWith(r rune) Flag {
	return Flag{pad: r}
}

// Transform returns a flag that rewrites the value. pad is the directive's
// effective pad width, zero when none applies.
func Transform(fn func(s string, pad int) string) Flag {
	return Flag{transform: fn}
}

// PadRune reports the pad character of a pad flag.
func (f Flag) PadRune() (rune, bool) {
	return f.pad, f.transform == nil
}

func (f Flag) apply(s string, pad int) string {
	if f.transform != nil {
		return f.transform(s, pad)
	}
	if pad > 0 {
		return padLeft(s, pad, f.pad)
	}
	return s
}

// FlagTable maps flag characters to flags.
type FlagTable map[rune]Flag

// BaseFlags returns the flags every shipped dialect starts from.
func BaseFlags() FlagTable {
	return FlagTable{
		'-': Transform(func(s string, _ int) string { return s }),
		'_': PadWith(' '),
		'0': PadWith('0'),
		'^': Transform(func(s string, _ int) string { return strings.ToUpper(s) }),
		'#': Transform(func(s string, _ int) string { return strings.ToLower(s) }),
	}
}

func (ft FlagTable) clone() FlagTable {
	out := make(FlagTable, len(ft))
	for k, v := range ft {
		out[k] = v
	}
	return out
}

// padLeft never truncates; width is counted in runes.
func padLeft(s string, width int, r rune) string {
	if width > MaxPad {
		width = MaxPad
	}
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(r), n) + s
}
