package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/sheetview/internal/viewmodel"
)

// Outline builds the mind-map tree of a markdown document: headings nest by
// level, list items under their heading or parent item, and loose paragraphs
// become leaves of the current heading. When the document has a single
// top-level branch, that branch is the root.
func Outline(markdown string) *viewmodel.OutlineNode {
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type stackEntry struct {
		node  *viewmodel.OutlineNode
		level int
	}
	root := &viewmodel.OutlineNode{}
	stack := []stackEntry{{node: root, level: 0}}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		top := stack[len(stack)-1].node
		switch node := n.(type) {
		case *ast.Heading:
			for len(stack) > 1 && stack[len(stack)-1].level >= node.Level {
				stack = stack[:len(stack)-1]
			}
			branch := &viewmodel.OutlineNode{Text: inlineText(node, src), Depth: node.Level}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, branch)
			stack = append(stack, stackEntry{node: branch, level: node.Level})

		case *ast.List:
			top.Children = append(top.Children, listItems(node, src, top.Depth+1)...)

		case *ast.Paragraph:
			if t := inlineText(node, src); t != "" {
				top.Children = append(top.Children, &viewmodel.OutlineNode{Text: t, Depth: top.Depth + 1})
			}
		}
	}

	if root.Text == "" && len(root.Children) == 1 {
		return root.Children[0]
	}
	return root
}

func listItems(list *ast.List, src []byte, depth int) []*viewmodel.OutlineNode {
	var out []*viewmodel.OutlineNode
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		branch := &viewmodel.OutlineNode{Depth: depth}
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				branch.Children = append(branch.Children, listItems(c, src, depth+1)...)
			default:
				if t := inlineText(c, src); t != "" {
					if branch.Text != "" {
						branch.Text += " "
					}
					branch.Text += t
				}
			}
		}
		out = append(out, branch)
	}
	return out
}

// inlineText concatenates the text segments under n.
func inlineText(n ast.Node, src []byte) string {
	var buf strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
			return
		case *ast.String:
			buf.Write(t.Value)
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
