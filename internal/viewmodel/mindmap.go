package viewmodel

// OutlineNode is one branch of a mind map: a heading or list item.
type OutlineNode struct {
	Text     string         `json:"text"`
	Depth    int            `json:"depth"`
	Children []*OutlineNode `json:"children,omitempty"`
}

// MindMap is the markdown selected for rendering and its outline.
type MindMap struct {
	ID           string       `json:"id"`
	MarkdownBody string       `json:"markdown"`
	Root         *OutlineNode `json:"root,omitempty"`
}
