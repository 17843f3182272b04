package render

import (
	"fmt"
	"strings"

	"github.com/dgallion1/sheetview/internal/parser"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

// Markdown projects a view-model onto markdown for terminal display. HTML
// fragments are reduced to their text.
func Markdown(model any) (string, error) {
	var b strings.Builder
	switch m := model.(type) {
	case viewmodel.ContentView:
		fmt.Fprintf(&b, "# %s\n\n", m.LessonGroup)
		writeTOC(&b, m.TOC, 0)
		for _, it := range m.Items {
			writeSection(&b, it.Level, it.HeadingHTML, it.ContentHTML)
		}
	case viewmodel.ConcatView:
		fmt.Fprintf(&b, "# %s\n\n", m.ID)
		writeTOC(&b, m.TOC, 0)
		b.WriteString(parser.HeadingText(m.HTML))
		b.WriteString("\n")
	case viewmodel.MindMap:
		b.WriteString(m.MarkdownBody)
		b.WriteString("\n")
	case viewmodel.MarkdownDeck:
		b.WriteString(m.Markdown)
		b.WriteString("\n")
	case viewmodel.RevealDeck:
		for i, s := range m.Slides {
			if i > 0 {
				b.WriteString("---\n\n")
			}
			writeSection(&b, 2, s.HeadingHTML, s.ContentHTML)
		}
	case viewmodel.Timeline:
		for _, ev := range m.Events {
			fmt.Fprintf(&b, "- **%04d-%02d-%02d** %s", ev.Year, ev.Month, ev.Day, ev.Headline)
			if text := parser.HeadingText(ev.BodyHTML); text != "" {
				b.WriteString(": " + text)
			}
			b.WriteString("\n")
		}
	default:
		return "", fmt.Errorf("no markdown projection for %T", model)
	}
	return b.String(), nil
}

func writeSection(b *strings.Builder, level int, headingHTML, contentHTML string) {
	level = min(max(level, 1), 6)
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), parser.HeadingText(headingHTML))
	if text := parser.HeadingText(contentHTML); text != "" {
		b.WriteString(text)
		b.WriteString("\n\n")
	}
}

func writeTOC(b *strings.Builder, nodes []*viewmodel.TocNode, depth int) {
	for _, n := range nodes {
		if n.Placeholder() {
			writeTOC(b, n.Children, depth+1)
			continue
		}
		fmt.Fprintf(b, "%s- [%s](#%s)\n", strings.Repeat("  ", depth), n.Text, n.AnchorID)
		writeTOC(b, n.Children, depth+1)
	}
	if depth == 0 && len(nodes) > 0 {
		b.WriteString("\n")
	}
}
