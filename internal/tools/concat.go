package tools

import (
	"strings"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/hierarchy"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

var (
	concatID    = []string{"id", "Id", "ID", "item_id", "itemId", "unique_id"}
	concatParts = [][]string{
		{"text_p1", "textP1"},
		{"text_p2", "textP2"},
		{"text_p3", "textP3"},
	}
)

// Concat joins the three text parts of one row into a single HTML document
// and indexes its headings.
var Concat = Definition{
	Name:     "concat",
	Title:    "HTML Content Concat Viewer",
	Path:     "html-content-concat-viewer",
	Required: []params.Param{params.ID},
	Map:      mapConcat,
}

func mapConcat(records []parser.Record, sel params.Selectors) (any, error) {
	id := sel.Param(params.ID)

	row, ok := findByID(records, id)
	if !ok {
		return nil, apperr.Content("No row found with id: %q", id)
	}

	var b strings.Builder
	for _, aliases := range concatParts {
		b.WriteString(rawField(row, aliases...))
	}

	html, headings, err := parser.AnchorHeadings(b.String(), hierarchy.AnchorID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindContent, err, "Row %q has unreadable HTML", id)
	}

	view := viewmodel.ConcatView{ID: id, HTML: html}
	if len(headings) > 0 {
		entries := make([]hierarchy.Entry, len(headings))
		for i, h := range headings {
			entries[i] = hierarchy.Entry{Text: h.Text, Level: h.Level, AnchorID: h.ID}
		}
		view.TOC = hierarchy.BuildTOC(entries)
	}
	return view, nil
}

// findByID returns the first row where any id column, trimmed, equals id.
func findByID(records []parser.Record, id string) (parser.Record, bool) {
	for _, r := range records {
		for _, a := range concatID {
			if r.Has(a) && strings.TrimSpace(r.Raw(a)) == id {
				return r, true
			}
		}
	}
	return nil, false
}

// rawField is Field without trimming: the first alias whose value is not
// blank, returned as stored.
func rawField(r parser.Record, aliases ...string) string {
	for _, a := range aliases {
		if v := r.Raw(a); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
