package dateform

import (
	"strconv"
	"strings"
)

// Token is one element of a parsed template: either a Literal or a Directive.
type Token interface {
	isToken()
	String() string
}

// Literal is a run of template text copied to the output unchanged.
type Literal string

func (Literal) isToken() {}

func (l Literal) String() string {
	return strconv.Quote(string(l))
}

// Directive is a parsed %-code. Pad is zero when no width was given in the
// template; Flags holds the flag characters in the order they appeared.
type Directive struct {
	Code  string
	Pad   int
	Flags string
}

func (Directive) isToken() {}

// String returns the directive in template form, e.g. "%_5M".
func (d Directive) String() string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(d.Flags)
	if d.Pad > 0 {
		b.WriteString(strconv.Itoa(d.Pad))
	}
	b.WriteString(d.Code)
	return b.String()
}

// Ref is shorthand for an undecorated directive, used when building aliases.
func Ref(code string) Directive {
	return Directive{Code: code}
}

// Tokens is a parsed template.
type Tokens []Token

func (ts Tokens) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Codes returns the code names referenced by the directives in ts, in order
// of first appearance.
func (ts Tokens) Codes() []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range ts {
		d, ok := t.(Directive)
		if !ok || seen[d.Code] {
			continue
		}
		seen[d.Code] = true
		out = append(out, d.Code)
	}
	return out
}
