package parser

import (
	"testing"
)

func TestOutline_HeadingHierarchy(t *testing.T) {
	input := `# Title

Intro text.

## Section A

- point one
- point two
  - nested

### Subsection A1

## Section B
`
	root := Outline(input)

	if root.Text != "Title" {
		t.Fatalf("expected single h1 to become root, got %q", root.Text)
	}
	// Intro paragraph, Section A, Section B
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 children under root, got %d", len(root.Children))
	}
	if root.Children[0].Text != "Intro text." {
		t.Errorf("expected paragraph leaf, got %q", root.Children[0].Text)
	}

	secA := root.Children[1]
	if secA.Text != "Section A" || secA.Depth != 2 {
		t.Errorf("unexpected section A: %+v", secA)
	}
	// two list items and the h3
	if len(secA.Children) != 3 {
		t.Fatalf("expected 3 children under Section A, got %d", len(secA.Children))
	}
	two := secA.Children[1]
	if two.Text != "point two" {
		t.Errorf("expected %q, got %q", "point two", two.Text)
	}
	if len(two.Children) != 1 || two.Children[0].Text != "nested" {
		t.Errorf("expected nested list item under point two, got %+v", two.Children)
	}
	if secA.Children[2].Text != "Subsection A1" {
		t.Errorf("expected h3 after list items, got %q", secA.Children[2].Text)
	}

	if root.Children[2].Text != "Section B" {
		t.Errorf("expected %q, got %q", "Section B", root.Children[2].Text)
	}
}

func TestOutline_MultipleRoots(t *testing.T) {
	root := Outline("# One\n\n# Two\n")
	if root.Text != "" {
		t.Fatalf("expected synthetic root, got %q", root.Text)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level branches, got %d", len(root.Children))
	}
}

func TestOutline_InlineMarkup(t *testing.T) {
	root := Outline("# The **bold** `code` [link](http://x)\n")
	if root.Text != "The bold code link" {
		t.Errorf("unexpected text %q", root.Text)
	}
}

func TestOutline_Empty(t *testing.T) {
	root := Outline("")
	if root.Text != "" || len(root.Children) != 0 {
		t.Errorf("expected empty outline, got %+v", root)
	}
}
