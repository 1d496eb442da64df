package dateform

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Grammar selects how many code characters a directive consumes.
type Grammar uint8

const (
	// SingleLetter takes exactly one letter or '%' after the flags (strftime).
	SingleLetter Grammar = iota
	// Word takes the longest run of letters and '%' after the flags.
	Word
)

func (g Grammar) String() string {
	if g == Word {
		return "word"
	}
	return "single-letter"
}

// Reachable reports whether a code name can be produced by parsing a
// template in this grammar.
func (g Grammar) Reachable(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isCodeByte(code[i]) {
			return false
		}
	}
	return g == Word || len(code) == 1
}

// Parse splits a template into literal runs and directives. It never fails:
// a '%' that does not start a directive is kept as literal text, and
// unknown code names are left for the renderer to drop.
func Parse(input string, g Grammar) Tokens {
	p := parser{input: input, grammar: g}
	return p.parse()
}

type parser struct {
	input   string
	pos     int
	grammar Grammar
}

func (p *parser) parse() Tokens {
	tokens := Tokens{}
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, Literal(literal.String()))
		literal.Reset()
	}

	for p.pos < len(p.input) {
		if d, width, ok := p.directive(p.input[p.pos:]); ok {
			flushLiteral()
			tokens = append(tokens, d)
			p.pos += width
			continue
		}
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		literal.WriteString(p.input[p.pos : p.pos+size])
		p.pos += size
	}

	flushLiteral()
	return tokens
}

// directive matches '%', a run of flag/pad characters, then the code name.
func (p *parser) directive(s string) (Directive, int, bool) {
	if len(s) < 2 || s[0] != '%' {
		return Directive{}, 0, false
	}
	start := 1
	for start < len(s) && !isCodeByte(s[start]) {
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	if start >= len(s) {
		return Directive{}, 0, false
	}

	end := start + 1
	if p.grammar == Word {
		for end < len(s) && isCodeByte(s[end]) {
			end++
		}
	}

	pad, flags := decorations(s[1:start])
	return Directive{Code: s[start:end], Pad: pad, Flags: flags}, end, true
}

// decorations scans the text between '%' and the code. A digit run starting
// at 1-9 sets the pad (a later run replaces an earlier one); any other
// character is a flag.
func decorations(seg string) (int, string) {
	pad := 0
	var flags strings.Builder
	for i := 0; i < len(seg); {
		if c := seg[i]; c >= '1' && c <= '9' {
			j := i + 1
			for j < len(seg) && seg[j] >= '0' && seg[j] <= '9' {
				j++
			}
			if n, err := strconv.Atoi(seg[i:j]); err == nil {
				pad = n
			}
			i = j
			continue
		}
		r, size := utf8.DecodeRuneInString(seg[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if isFlagRune(r) {
			flags.WriteRune(r)
		}
		i += size
	}
	return pad, flags.String()
}

func isCodeByte(c byte) bool {
	return c == '%' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isFlagRune(r rune) bool {
	return r >= utf8.RuneSelf || !isCodeByte(byte(r))
}
