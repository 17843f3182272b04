package tools

import (
	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/hierarchy"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

var (
	contentHeading = []string{"heading"}
	contentBody    = []string{"content"}
	contentGroup   = []string{"lesson_group"}
)

// Content lists the heading/content rows of one lesson group with a table of
// contents. Rows with a heading and no content are kept.
var Content = Definition{
	Name:     "content",
	Title:    "HTML Content Viewer",
	Path:     "html-content-viewer",
	Required: []params.Param{params.LessonGroup},
	Map:      mapContent,
}

func mapContent(records []parser.Record, sel params.Selectors) (any, error) {
	group := sel.Param(params.LessonGroup)

	var items []viewmodel.ViewItem
	for _, r := range records {
		if r.Field(contentGroup...) != group {
			continue
		}
		heading := r.Field(contentHeading...)
		if heading == "" {
			continue
		}
		items = append(items, viewmodel.ViewItem{
			HeadingHTML: heading,
			ContentHTML: r.Field(contentBody...),
			Level:       parser.HeadingLevel(heading),
		})
	}
	if len(items) == 0 {
		return nil, apperr.Content("No content found for lesson_group: %q", group)
	}

	entries := make([]hierarchy.Entry, len(items))
	for i := range items {
		text := parser.HeadingText(items[i].HeadingHTML)
		items[i].AnchorID = hierarchy.AnchorID(text, i)
		entries[i] = hierarchy.Entry{Text: text, Level: items[i].Level, AnchorID: items[i].AnchorID}
	}

	return viewmodel.ContentView{
		LessonGroup: group,
		Items:       items,
		TOC:         hierarchy.BuildTOC(entries),
	}, nil
}
