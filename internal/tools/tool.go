// Package tools maps parsed CSV records into the view-model of each viewer.
// Every viewer is a Definition: the selectors it needs and a Map function
// over the records. One Driver runs them all.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
)

// ErrUnknownTool is returned by Run for a name with no registered Definition.
var ErrUnknownTool = errors.New("unknown tool")

// Fetcher loads the CSV text behind a URL.
type Fetcher interface {
	FetchCSV(ctx context.Context, rawURL string) (string, error)
}

// MapFunc turns records into a view-model. It fails with an apperr Content
// error when nothing usable is selected.
type MapFunc func(records []parser.Record, sel params.Selectors) (any, error)

// Definition describes one viewer. Path is the viewer's directory under the
// launch base.
type Definition struct {
	Name     string         `json:"name"`
	Title    string         `json:"title"`
	Path     string         `json:"path"`
	Required []params.Param `json:"required"`
	Optional []params.Param `json:"optional"`
	Map      MapFunc        `json:"-"`
}

// Validate checks that the CSV URL and every required selector are present.
func (d Definition) Validate(sel params.Selectors) error {
	if sel.Param(params.CSV) == "" {
		return apperr.Input("No CSV URL provided. Use: ?csv=https://your-url/%s.csv", d.Name)
	}
	for _, p := range d.Required {
		if sel.Param(p) == "" {
			return apperr.Input("No %s specified. Use: ?csv=...&%s=...", p.Name, p.Name)
		}
	}
	return nil
}

// Registry holds definitions in registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, dup := r.defs[d.Name]; !dup {
			r.order = append(r.order, d.Name)
		}
		r.defs[d.Name] = d
	}
	return r
}

// Default returns the registry of every built-in viewer.
func Default() *Registry {
	return NewRegistry(Content, Concat, MindMap, MarkdownSlides, Reveal, Timeline)
}

func (r *Registry) Lookup(name string) (Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// List returns the definitions in registration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Result is one mapped view-model and the tool that produced it.
type Result struct {
	Tool  string `json:"tool"`
	Model any    `json:"model"`
}

// Driver runs fetch, parse and map for a named tool.
type Driver struct {
	registry *Registry
	fetcher  Fetcher
	log      *slog.Logger
}

func NewDriver(registry *Registry, fetcher Fetcher, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Driver{registry: registry, fetcher: fetcher, log: log}
}

func (d *Driver) Registry() *Registry {
	return d.registry
}

// Run builds the view-model for tool from the CSV named in sel. Selectors
// are validated before anything is fetched.
func (d *Driver) Run(ctx context.Context, tool string, sel params.Selectors) (Result, error) {
	def, ok := d.registry.Lookup(tool)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	if err := def.Validate(sel); err != nil {
		return Result{}, err
	}

	start := time.Now()
	text, err := d.fetcher.FetchCSV(ctx, sel.Param(params.CSV))
	if err != nil {
		return Result{}, fmt.Errorf("load csv: %w", err)
	}

	records, err := parser.ParseString(text)
	if err != nil {
		return Result{}, fmt.Errorf("parse csv: %w", err)
	}

	model, err := def.Map(records, sel)
	if err != nil {
		return Result{}, fmt.Errorf("map %s: %w", tool, err)
	}

	d.log.Info("view built",
		"tool", tool,
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Result{Tool: tool, Model: model}, nil
}
