// Package dialects ships the built-in template dialects.
package dialects

import (
	"sort"
	"strings"

	"github.com/yiblet/dateform/internal/dateform"
)

var registry = map[string]*dateform.Dialect{
	"strf":     Strf,
	"strftime": Strf,
	"express":  Express,
}

// Lookup finds a built-in dialect by name, ignoring case.
func Lookup(name string) (*dateform.Dialect, bool) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Names lists the names Lookup accepts.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
