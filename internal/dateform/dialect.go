package dateform

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

// DefaultMaxDepth is the alias nesting limit used unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 64

// Code is one entry of a code table. Flag is the flag applied when a
// directive carries none (zero for no default); Pad is the width used when
// the directive gives none.
type Code struct {
	Gen  Generator
	Flag rune
	Pad  int
}

// CodeTable maps code names to entries.
type CodeTable map[string]Code

func (ct CodeTable) clone() CodeTable {
	out := make(CodeTable, len(ct))
	for k, v := range ct {
		out[k] = v
	}
	return out
}

// CycleError reports alias codes that expand into themselves.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("alias cycle: %s", strings.Join(e.Path, " -> "))
}

// Dialect is an immutable template language: a grammar plus code and flag
// tables. It is safe for concurrent use.
type Dialect struct {
	name     string
	grammar  Grammar
	codes    CodeTable
	flags    FlagTable
	maxDepth int
	clock    clockwork.Clock
	fallback string
}

// Option configures a Dialect at construction.
type Option func(*Dialect)

// WithClock sets the clock FormatNow reads.
func WithClock(c clockwork.Clock) Option {
	return func(d *Dialect) { d.clock = c }
}

// WithMaxDepth bounds alias nesting during rendering. Expansions deeper than
// n render as empty strings.
func WithMaxDepth(n int) Option {
	return func(d *Dialect) { d.maxDepth = n }
}

// WithDefaultTemplate records the template callers should use when the user
// gives none.
func WithDefaultTemplate(tpl string) Option {
	return func(d *Dialect) { d.fallback = tpl }
}

// probeDate is the date alias generators are expanded against when the
// dialect checks its alias graph.
var probeDate = time.Date(2000, time.December, 25, 13, 15, 45, 0, time.UTC)

// NewDialect copies codes and flags and checks them: every code must have a
// generator and a name the grammar can reach, every flag must be a valid
// flag character, and aliases must not form cycles.
func NewDialect(name string, g Grammar, codes CodeTable, flags FlagTable, opts ...Option) (*Dialect, error) {
	d := &Dialect{
		name:     name,
		grammar:  g,
		codes:    codes.clone(),
		flags:    flags.clone(),
		maxDepth: DefaultMaxDepth,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.validate(); err != nil {
		return nil, errors.Wrapf(err, "dialect %q", name)
	}
	return d, nil
}

// MustDialect is NewDialect for package-level tables; it panics on error.
func MustDialect(name string, g Grammar, codes CodeTable, flags FlagTable, opts ...Option) *Dialect {
	d, err := NewDialect(name, g, codes, flags, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Extend returns a new dialect with the given entries added to or replacing
// those of d. The new dialect inherits d's options; opts are applied after
// them. The receiver is left untouched.
func (d *Dialect) Extend(name string, codes CodeTable, flags FlagTable, opts ...Option) (*Dialect, error) {
	merged := d.codes.clone()
	for k, v := range codes {
		merged[k] = v
	}
	mergedFlags := d.flags.clone()
	for k, v := range flags {
		mergedFlags[k] = v
	}
	inherited := []Option{WithClock(d.clock), WithMaxDepth(d.maxDepth), WithDefaultTemplate(d.fallback)}
	return NewDialect(name, d.grammar, merged, mergedFlags, append(inherited, opts...)...)
}

func (d *Dialect) Name() string {
	return d.name
}

func (d *Dialect) Grammar() Grammar {
	return d.grammar
}

// DefaultTemplate is the template set with WithDefaultTemplate, if any.
func (d *Dialect) DefaultTemplate() string {
	return d.fallback
}

// Lookup returns the entry for a code name.
func (d *Dialect) Lookup(code string) (Code, bool) {
	c, ok := d.codes[code]
	return c, ok
}

// CodeNames lists the dialect's codes in sorted order.
func (d *Dialect) CodeNames() []string {
	names := make([]string, 0, len(d.codes))
	for k := range d.codes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (d *Dialect) validate() error {
	if d.maxDepth < 1 {
		return errors.Errorf("max depth must be positive, got %d", d.maxDepth)
	}
	for _, name := range d.CodeNames() {
		if d.codes[name].Gen == nil {
			return errors.Errorf("code %q has no generator", name)
		}
		if !d.grammar.Reachable(name) {
			return errors.Errorf("code %q cannot appear in a %s template", name, d.grammar)
		}
		if p := d.codes[name].Pad; p < 0 {
			return errors.Errorf("code %q has negative pad %d", name, p)
		}
	}
	for r := range d.flags {
		if !isFlagRune(r) || (r >= '1' && r <= '9') {
			return errors.Errorf("%q cannot be used as a flag", r)
		}
	}
	return d.checkCycles()
}

// checkCycles walks the alias graph as seen at probeDate.
func (d *Dialect) checkCycles() error {
	const (
		_ = iota
		visiting
		done
	)
	state := map[string]int{}
	var stack []string

	var visit func(code string) error
	visit = func(code string) error {
		switch state[code] {
		case done:
			return nil
		case visiting:
			i := len(stack) - 1
			for i > 0 && stack[i] != code {
				i--
			}
			path := append(append([]string(nil), stack[i:]...), code)
			return &CycleError{Path: path}
		}
		state[code] = visiting
		stack = append(stack, code)
		for _, ref := range d.codes[code].Gen(probeDate).Tokens().Codes() {
			if _, ok := d.codes[ref]; !ok {
				continue
			}
			if err := visit(ref); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[code] = done
		return nil
	}

	for _, name := range d.CodeNames() {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
