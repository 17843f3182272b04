// Package hierarchy turns flat, heading-leveled sequences into nested
// structures: tables of contents and vertical slide stacks.
package hierarchy

import "github.com/dgallion1/sheetview/internal/viewmodel"

// Entry is one heading to place in a table of contents.
type Entry struct {
	Text     string
	Level    int
	AnchorID string
}

// BuildTOC nests entries by level, starting from the smallest level present.
// A deeper entry opens one frame per skipped level under the most recently
// added node; when a frame has no node yet, a placeholder is inserted to hold
// it. A shallower entry closes frames back to its level. Equal levels are
// siblings.
func BuildTOC(entries []Entry) []*viewmodel.TocNode {
	if len(entries) == 0 {
		return nil
	}

	base := entries[0].Level
	for _, e := range entries[1:] {
		base = min(base, e.Level)
	}

	type frame struct {
		node  *viewmodel.TocNode
		level int
	}
	root := &viewmodel.TocNode{Level: base - 1}
	stack := []frame{{node: root, level: base}}
	depth := base

	for _, e := range entries {
		for e.Level > depth {
			container := stack[len(stack)-1].node
			var parent *viewmodel.TocNode
			if n := len(container.Children); n > 0 {
				parent = container.Children[n-1]
			} else {
				parent = &viewmodel.TocNode{Level: depth}
				container.Children = append(container.Children, parent)
			}
			depth++
			stack = append(stack, frame{node: parent, level: depth})
		}
		for e.Level < depth && len(stack) > 1 {
			stack = stack[:len(stack)-1]
			depth--
		}

		container := stack[len(stack)-1].node
		container.Children = append(container.Children, &viewmodel.TocNode{
			Text:     e.Text,
			Level:    e.Level,
			AnchorID: e.AnchorID,
		})
	}

	return root.Children
}
