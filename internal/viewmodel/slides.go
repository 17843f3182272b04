package viewmodel

// Slide is one Reveal.js section.
type Slide struct {
	ViewItem
	ID                 string `json:"slide_id,omitempty"`
	Background         string `json:"background,omitempty"`
	Transition         string `json:"transition,omitempty"`
	Classes            string `json:"classes,omitempty"`
	NotesHTML          string `json:"notes_html,omitempty"`
	PresentationFilter string `json:"presentation_filter,omitempty"`
}

type StackKind string

const (
	StackSingle   StackKind = "single"
	StackVertical StackKind = "stack"
)

// SlideStackNode is a top-level slot: one slide, or a vertical stack whose
// first slide is the parent.
type SlideStackNode struct {
	Kind   StackKind `json:"type"`
	Slides []Slide   `json:"slides"`
}

func Single(s Slide) SlideStackNode {
	return SlideStackNode{Kind: StackSingle, Slides: []Slide{s}}
}

// Attach adds s below the slot, turning a single into a stack.
func (n *SlideStackNode) Attach(s Slide) {
	n.Kind = StackVertical
	n.Slides = append(n.Slides, s)
}

// RevealDeck is the filtered slide list. Nodes is set only when a vertical
// level was requested.
type RevealDeck struct {
	Filter        string           `json:"presentation_filter,omitempty"`
	VerticalLevel int              `json:"vertical_level,omitempty"`
	Slides        []Slide          `json:"slides"`
	Nodes         []SlideStackNode `json:"nodes,omitempty"`
}
