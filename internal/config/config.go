// Package config loads dialect extension files.
//
// An extension file names a built-in dialect and adds alias codes, default
// overrides and pad flags on top of it:
//
//	dialect = "strf"
//	name = "ops"
//
//	[aliases]
//	stamp = "%F %T%:z"
//
//	[defaults.d]
//	flag = "_"
//	pad = 3
//
//	[pads]
//	"*" = "*"
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/yiblet/dateform/internal/dateform"
	"github.com/yiblet/dateform/internal/dialects"
)

const logModule = "config"

// File is the decoded form of an extension file.
type File struct {
	Dialect  string             `toml:"dialect"`
	Name     string             `toml:"name"`
	Template string             `toml:"template"`
	Aliases  map[string]string  `toml:"aliases"`
	Defaults map[string]Default `toml:"defaults"`
	Pads     map[string]string  `toml:"pads"`
}

// Default overrides the default flag and pad of an existing code.
type Default struct {
	Flag string `toml:"flag"`
	Pad  int    `toml:"pad"`
}

// Parse reads and validates the extension file at path.
func Parse(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return f, nil
}

// Decode reads an extension file from r. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	if err := toml.NewDecoder(r).Strict(true).Decode(f); err != nil {
		return nil, err
	}
	if problems := f.validate(); problems != nil {
		return nil, errors.New(strings.Join(problems, "\n"))
	}
	return f, nil
}

func (f *File) validate() []string {
	var problems []string
	if f.Dialect == "" {
		problems = append(problems, "dialect is required")
	} else if _, ok := dialects.Lookup(f.Dialect); !ok {
		problems = append(problems, fmt.Sprintf(
			"unknown dialect %q (known: %s)", f.Dialect, strings.Join(dialects.Names(), ", ")))
	}
	for _, code := range sortedKeys(f.Defaults) {
		def := f.Defaults[code]
		if def.Flag != "" && utf8.RuneCountInString(def.Flag) != 1 {
			problems = append(problems, fmt.Sprintf("defaults.%s: flag must be a single character, got %q", code, def.Flag))
		}
		if def.Pad < 0 {
			problems = append(problems, fmt.Sprintf("defaults.%s: pad must not be negative", code))
		}
	}
	for _, flag := range sortedKeys(f.Pads) {
		if utf8.RuneCountInString(flag) != 1 {
			problems = append(problems, fmt.Sprintf("pads: flag %q must be a single character", flag))
		}
		if utf8.RuneCountInString(f.Pads[flag]) != 1 {
			problems = append(problems, fmt.Sprintf("pads.%s: pad must be a single character", flag))
		}
	}
	return problems
}

// Build extends the named built-in dialect with the file's entries.
func (f *File) Build() (*dateform.Dialect, error) {
	base, ok := dialects.Lookup(f.Dialect)
	if !ok {
		return nil, errors.Errorf("unknown dialect %q", f.Dialect)
	}

	codes := dateform.CodeTable{}
	for name, tpl := range f.Aliases {
		codes[name] = dateform.Code{Gen: dateform.Alias(base.ParseFormat(tpl)...)}
	}
	for _, name := range sortedKeys(f.Defaults) {
		entry, ok := codes[name]
		if !ok {
			if entry, ok = base.Lookup(name); !ok {
				return nil, errors.Errorf("defaults.%s: no such code in %s", name, base.Name())
			}
		}
		def := f.Defaults[name]
		if def.Flag != "" {
			entry.Flag, _ = utf8.DecodeRuneInString(def.Flag)
		}
		if def.Pad > 0 {
			entry.Pad = def.Pad
		}
		codes[name] = entry
	}

	flags := dateform.FlagTable{}
	for flag, pad := range f.Pads {
		r, _ := utf8.DecodeRuneInString(flag)
		p, _ := utf8.DecodeRuneInString(pad)
		flags[r] = dateform.PadWith(p)
	}

	name := f.Name
	if name == "" {
		name = base.Name() + "+ext"
	}
	var opts []dateform.Option
	if f.Template != "" {
		opts = append(opts, dateform.WithDefaultTemplate(f.Template))
	}
	d, err := base.Extend(name, codes, flags, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "extend dialect")
	}

	log.WithFields(log.Fields{
		"module":   logModule,
		"dialect":  name,
		"base":     base.Name(),
		"aliases":  len(f.Aliases),
		"defaults": len(f.Defaults),
	}).Debug("built dialect extension")
	return d, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
