// Package launcher builds the URL that opens a viewer with its selectors
// filled in.
package launcher

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/tools"
)

const DefaultBase = "tools/"

// Launcher validates launch requests against the tool registry.
type Launcher struct {
	base     string
	registry *tools.Registry
}

// New returns a Launcher rooted at base. An empty base means DefaultBase.
func New(base string, registry *tools.Registry) *Launcher {
	if base == "" {
		base = DefaultBase
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Launcher{base: base, registry: registry}
}

// URL returns <base><tool path>/?csv=...&<required>&<optional>. Required
// selectors must be present; optional ones are added when set. Every value is
// carried under its canonical name.
func (l *Launcher) URL(tool string, sel params.Selectors) (string, error) {
	if tool == "" {
		return "", apperr.Input("Please select a tool")
	}
	def, ok := l.registry.Lookup(tool)
	if !ok {
		return "", fmt.Errorf("%w: %q", tools.ErrUnknownTool, tool)
	}

	csv := sel.Param(params.CSV)
	if csv == "" {
		return "", apperr.Input("Please enter a CSV/Sheet URL")
	}
	if !validURL(csv) {
		return "", apperr.Input("Please enter a valid URL")
	}

	q := []string{pair(params.CSV.Name, csv)}
	for _, p := range def.Required {
		v := sel.Param(p)
		if v == "" {
			return "", apperr.Input("Please enter a %s for %s", p.Name, def.Title)
		}
		q = append(q, pair(p.Name, v))
	}
	for _, p := range def.Optional {
		if v := sel.Param(p); v != "" {
			q = append(q, pair(p.Name, v))
		}
	}

	return l.base + def.Path + "/?" + strings.Join(q, "&"), nil
}

// pair keeps insertion order, which url.Values.Encode would sort away.
func pair(key, value string) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(value)
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
