// Package viewmodel holds the structures handed to external renderers.
// They are built once per request from the fetched CSV and never mutated
// afterwards.
package viewmodel

// DefaultHeadingLevel applies when heading markup carries no h1-h6 tag.
const DefaultHeadingLevel = 3

// ViewItem is one heading/content pair. Level is derived from HeadingHTML
// once, at mapping time.
type ViewItem struct {
	HeadingHTML string `json:"heading_html"`
	ContentHTML string `json:"content_html"`
	Level       int    `json:"level"`
	AnchorID    string `json:"anchor_id,omitempty"`
}

// TocNode is a table-of-contents entry. A node with empty Text and AnchorID is
// a placeholder for a nesting level that has no heading of its own.
type TocNode struct {
	Text     string     `json:"text"`
	Level    int        `json:"level"`
	AnchorID string     `json:"anchor_id"`
	Children []*TocNode `json:"children,omitempty"`
}

func (n *TocNode) Placeholder() bool {
	return n.Text == "" && n.AnchorID == ""
}

// ContentView is the lesson-group content list with its TOC.
type ContentView struct {
	LessonGroup string     `json:"lesson_group"`
	Items       []ViewItem `json:"items"`
	TOC         []*TocNode `json:"toc"`
}

// ConcatView is the concatenated HTML of one row. HTML has an id on every
// heading the TOC links to. TOC is nil when the HTML has no headings.
type ConcatView struct {
	ID   string     `json:"id"`
	HTML string     `json:"html"`
	TOC  []*TocNode `json:"toc,omitempty"`
}

// MarkdownDeck is markdown for a Reveal.js markdown presentation.
type MarkdownDeck struct {
	ID                string `json:"id"`
	Markdown          string `json:"markdown"`
	Separator         string `json:"separator"`
	VerticalSeparator string `json:"vertical_separator"`
}
