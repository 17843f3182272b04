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
	timelineYear       = []string{"Year", "Start Year"}
	timelineMonth      = []string{"Month", "Start Month"}
	timelineDay        = []string{"Day", "Start Day"}
	timelineTime       = []string{"Time"}
	timelineHeadline   = []string{"Headline", "Title"}
	timelineText       = []string{"Text", "Description"}
	timelineMedia      = []string{"Media", "Media URL", "media_url"}
	timelineCredit     = []string{"Media Credit", "credit"}
	timelineCaption    = []string{"Media Caption", "caption"}
	timelineThumbnail  = []string{"Media Thumbnail", "thumbnail"}
	timelineGroup      = []string{"Group", "Type"}
	timelineBackground = []string{"Background"}
)

// Timeline reads Knight Lab style rows into dated events. Rows without a
// year or headline are skipped.
var Timeline = Definition{
	Name:  "timeline",
	Title: "Knight Lab Timeline",
	Path:  "knightlab-timeline",
	Map:   mapTimeline,
}

func mapTimeline(records []parser.Record, _ params.Selectors) (any, error) {
	var events []viewmodel.TimelineEvent
	for _, r := range records {
		year := leadingInt(r.Field(timelineYear...))
		headline := r.Field(timelineHeadline...)
		if year == 0 || headline == "" {
			continue
		}

		ev := viewmodel.TimelineEvent{
			Year:            year,
			Month:           clamp(orOne(leadingInt(r.Field(timelineMonth...))), 1, 12),
			Day:             clamp(orOne(leadingInt(r.Field(timelineDay...))), 1, 31),
			Time:            r.Field(timelineTime...),
			Headline:        headline,
			BodyHTML:        r.Field(timelineText...),
			Group:           r.Field(timelineGroup...),
			BackgroundColor: r.Field(timelineBackground...),
		}
		if url := r.Field(timelineMedia...); url != "" {
			ev.Media = &viewmodel.Media{
				URL:       url,
				Caption:   r.Field(timelineCaption...),
				Credit:    r.Field(timelineCredit...),
				Thumbnail: r.Field(timelineThumbnail...),
			}
		}
		events = append(events, ev)
	}
	if len(events) == 0 {
		return nil, apperr.Content("No valid events found in CSV")
	}
	return viewmodel.Timeline{Events: events}, nil
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring anything after. It returns 0 when there are no digits.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
