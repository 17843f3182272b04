package tools

import (
	"html"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/hierarchy"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

var (
	revealID         = []string{"slide_id", "id"}
	revealHeading    = []string{"heading_html", "title", "heading"}
	revealContent    = []string{"content_html", "content", "body"}
	revealBackground = []string{"background", "bg"}
	revealTransition = []string{"transition"}
	revealClasses    = []string{"classes"}
	revealNotes      = []string{"notes"}
	revealFilter     = []string{"presentation_filter", "presentation"}
)

// Reveal builds HTML slides, optionally restricted to one presentation and
// grouped into vertical stacks by heading level.
var Reveal = Definition{
	Name:     "reveal",
	Title:    "Reveal.js Slideshow",
	Path:     "reveal-slideshow",
	Optional: []params.Param{params.PresentationFilter, params.VerticalLevel},
	Map:      mapReveal,
}

func mapReveal(records []parser.Record, sel params.Selectors) (any, error) {
	filter := sel.Param(params.PresentationFilter)

	var slides []viewmodel.Slide
	for _, r := range records {
		s := viewmodel.Slide{
			ID:                 r.Field(revealID...),
			Background:         r.Field(revealBackground...),
			Transition:         r.Field(revealTransition...),
			Classes:            r.Field(revealClasses...),
			PresentationFilter: r.Field(revealFilter...),
		}
		if filter != "" && s.PresentationFilter != filter {
			continue
		}
		heading := r.Field(revealHeading...)
		s.ViewItem = viewmodel.ViewItem{
			HeadingHTML: heading,
			ContentHTML: r.Field(revealContent...),
			Level:       parser.HeadingLevel(heading),
		}
		if notes := r.Field(revealNotes...); notes != "" {
			s.NotesHTML = html.EscapeString(notes)
		}
		slides = append(slides, s)
	}
	if len(slides) == 0 {
		return nil, apperr.Content("No valid slides found in CSV for the selected presentation")
	}

	deck := viewmodel.RevealDeck{Filter: filter, Slides: slides}
	if level, ok := params.ParseVerticalLevel(sel.Param(params.VerticalLevel)); ok {
		deck.VerticalLevel = level
		deck.Nodes = hierarchy.GroupVertical(slides, level)
	}
	return deck, nil
}
