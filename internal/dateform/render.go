package dateform

import (
	"strings"
)

// ParseFormat parses a template with the dialect's grammar.
func (d *Dialect) ParseFormat(template string) Tokens {
	return Parse(template, d.grammar)
}

// ApplyFormat renders tokens against date. Directives naming codes the
// dialect does not define render as nothing, as do flags it does not define.
func (d *Dialect) ApplyFormat(tokens Tokens, date Date) string {
	var b strings.Builder
	d.render(&b, tokens, date, 0)
	return b.String()
}

// Format parses and renders template in one step.
func (d *Dialect) Format(template string, date Date) string {
	return d.ApplyFormat(d.ParseFormat(template), date)
}

// FormatNow renders template against the dialect's clock.
func (d *Dialect) FormatNow(template string) string {
	return d.Format(template, d.clock.Now())
}

func (d *Dialect) render(b *strings.Builder, tokens Tokens, date Date, depth int) {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			b.WriteString(string(t))
		case Directive:
			b.WriteString(d.directive(t, date, depth))
		}
	}
}

func (d *Dialect) directive(t Directive, date Date, depth int) string {
	code, ok := d.codes[t.Code]
	if !ok {
		return ""
	}
	pad := t.Pad
	if pad == 0 {
		pad = code.Pad
	}

	var out string
	v := code.Gen(date)
	switch v.Kind() {
	case KindNested:
		if depth >= d.maxDepth {
			return ""
		}
		var nested strings.Builder
		d.render(&nested, v.tokens, date, depth+1)
		out = nested.String()
	default:
		out, _ = v.Scalar()
	}

	// Padding only ever happens through a flag; a bare pad width with no
	// flag and no default flag leaves the value alone.
	if t.Flags != "" {
		for _, r := range t.Flags {
			out = d.applyFlag(r, out, pad)
		}
	} else if code.Flag != 0 {
		out = d.applyFlag(code.Flag, out, pad)
	}
	return out
}

func (d *Dialect) applyFlag(r rune, s string, pad int) string {
	f, ok := d.flags[r]
	if !ok {
		return s
	}
	return f.apply(s, pad)
}
