package tools

import (
	"strconv"
	"strings"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

var (
	mindMapID       = []string{"id", "title"}
	mindMapMarkdown = []string{"markdown", "md", "content"}
)

// MindMap selects one markdown document by id or title and outlines it.
var MindMap = Definition{
	Name:     "mindmap",
	Title:    "Markmap Visualizer",
	Path:     "markmap-visualizer",
	Required: []params.Param{params.Title},
	Map:      mapMindMap,
}

func mapMindMap(records []parser.Record, sel params.Selectors) (any, error) {
	want := sel.Param(params.Title)

	var maps []viewmodel.MindMap
	for _, r := range records {
		id := r.Field(mindMapID...)
		md := r.Field(mindMapMarkdown...)
		if id == "" || md == "" {
			continue
		}
		maps = append(maps, viewmodel.MindMap{ID: id, MarkdownBody: parser.ExpandEscapedNewlines(md)})
	}
	if len(maps) == 0 {
		return nil, apperr.Content("No valid maps found in CSV")
	}

	for _, m := range maps {
		if strings.EqualFold(m.ID, want) {
			m.Root = parser.Outline(m.MarkdownBody)
			return m, nil
		}
	}

	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = strconv.Quote(m.ID)
	}
	return nil, apperr.Content("Map with id %q not found. Available maps: %s", want, strings.Join(ids, ", "))
}
