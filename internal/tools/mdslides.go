package tools

import (
	"strings"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

const (
	slideSeparator         = "\n---\n"
	verticalSlideSeparator = "\n--\n"
	slidePartJoiner        = "\n\n"
)

var (
	mdSlidesID    = []string{"id", "ID"}
	mdSlidesParts = []string{"slides_p1", "slides_p2", "slides_p3"}
)

// MarkdownSlides joins the markdown parts of one row into a Reveal.js deck.
var MarkdownSlides = Definition{
	Name:     "mdslides",
	Title:    "Reveal.js Markdown Slideshow",
	Path:     "reveal-md-slideshow",
	Required: []params.Param{params.ID},
	Map:      mapMarkdownSlides,
}

func mapMarkdownSlides(records []parser.Record, sel params.Selectors) (any, error) {
	id := sel.Param(params.ID)

	var row parser.Record
	for _, r := range records {
		if r.Field(mdSlidesID...) == id {
			row = r
			break
		}
	}
	if row == nil {
		return nil, apperr.Content("No row found with id: %s", id)
	}

	parts := make([]string, 0, len(mdSlidesParts))
	for _, name := range mdSlidesParts {
		if v := row.Raw(name); strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return nil, apperr.Content("No slide content found in slides_p1, slides_p2, or slides_p3")
	}

	return viewmodel.MarkdownDeck{
		ID:                id,
		Markdown:          strings.Join(parts, slidePartJoiner),
		Separator:         slideSeparator,
		VerticalSeparator: verticalSlideSeparator,
	}, nil
}
