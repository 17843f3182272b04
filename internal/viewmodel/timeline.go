package viewmodel

import (
	"encoding/json"
	"strconv"
)

// Media is an optional timeline attachment.
type Media struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	Credit    string `json:"credit"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// TimelineEvent is a single dated event. Month and Day are already clamped.
type TimelineEvent struct {
	Year            int
	Month           int
	Day             int
	Time            string
	Headline        string
	BodyHTML        string
	Media           *Media
	Group           string
	BackgroundColor string
}

type Timeline struct {
	Events []TimelineEvent `json:"events"`
}

// Timeline.js reads date parts as strings.
type tlDate struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Time  string `json:"display_time,omitempty"`
}

type tlText struct {
	Headline string `json:"headline"`
	Text     string `json:"text"`
}

type tlBackground struct {
	Color string `json:"color"`
}

type tlEvent struct {
	StartDate  tlDate        `json:"start_date"`
	Text       tlText        `json:"text"`
	Media      *Media        `json:"media,omitempty"`
	Group      string        `json:"group,omitempty"`
	Background *tlBackground `json:"background,omitempty"`
}

// MarshalJSON emits the Timeline.js event shape.
func (e TimelineEvent) MarshalJSON() ([]byte, error) {
	out := tlEvent{
		StartDate: tlDate{
			Year:  strconv.Itoa(e.Year),
			Month: strconv.Itoa(e.Month),
			Day:   strconv.Itoa(e.Day),
			Time:  e.Time,
		},
		Text:  tlText{Headline: e.Headline, Text: e.BodyHTML},
		Media: e.Media,
		Group: e.Group,
	}
	if e.BackgroundColor != "" {
		out.Background = &tlBackground{Color: e.BackgroundColor}
	}
	return json.Marshal(out)
}
