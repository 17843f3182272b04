package hierarchy

import "github.com/dgallion1/sheetview/internal/viewmodel"

// GroupVertical arranges slides into top-level slots. A slide whose level is
// below threshold opens a new slot; any other slide joins the latest slot as
// a vertical child, or opens a slot itself when none exists yet.
func GroupVertical(slides []viewmodel.Slide, threshold int) []viewmodel.SlideStackNode {
	nodes := make([]viewmodel.SlideStackNode, 0, len(slides))
	for _, s := range slides {
		if s.Level < threshold || len(nodes) == 0 {
			nodes = append(nodes, viewmodel.Single(s))
			continue
		}
		nodes[len(nodes)-1].Attach(s)
	}
	return nodes
}
