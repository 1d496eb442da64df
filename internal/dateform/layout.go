package dateform

// Layout is a template parsed once for repeated rendering.
type Layout struct {
	dialect *Dialect
	source  string
	tokens  Tokens
}

// Compile parses template for reuse. Compiling never fails.
func (d *Dialect) Compile(template string) *Layout {
	return &Layout{dialect: d, source: template, tokens: d.ParseFormat(template)}
}

// Format renders the layout against date.
func (l *Layout) Format(date Date) string {
	return l.dialect.ApplyFormat(l.tokens, date)
}

// FormatNow renders the layout against the dialect's clock.
func (l *Layout) FormatNow() string {
	return l.Format(l.dialect.clock.Now())
}

// Tokens returns a copy of the parsed template.
func (l *Layout) Tokens() Tokens {
	return append(Tokens(nil), l.tokens...)
}

func (l *Layout) Dialect() *Dialect {
	return l.dialect
}

// String returns the source template.
func (l *Layout) String() string {
	return l.source
}
