package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dgallion1/sheetview/internal/viewmodel"
)

// Heading is an h1-h6 element found in an HTML fragment.
type Heading struct {
	Text  string
	Level int
	ID    string
}

var headingTagPattern = regexp.MustCompile(`(?i)<h([1-6])\b`)

// HeadingLevel returns the level of the first h1-h6 start tag in fragment,
// or viewmodel.DefaultHeadingLevel when there is none. Tags the tokenizer
// cannot complete, such as "<h2 Title", are matched by pattern.
func HeadingLevel(fragment string) int {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return unterminatedHeadingLevel(fragment)
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if level := headingLevel(string(name)); level > 0 {
				return level
			}
		}
	}
}

func unterminatedHeadingLevel(fragment string) int {
	m := headingTagPattern.FindStringSubmatch(fragment)
	if m == nil {
		return viewmodel.DefaultHeadingLevel
	}
	level, _ := strconv.Atoi(m[1])
	return level
}

// HeadingText returns the visible text of fragment with whitespace collapsed.
func HeadingText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var buf strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(buf.String()), " ")
		case html.TextToken:
			buf.Write(z.Text())
		}
	}
}

// AnchorHeadings gives every heading in fragment an id attribute, keeping
// ids that are already present, and returns the re-rendered HTML along with
// the headings in document order. anchor receives the heading text and its
// zero-based position among all headings.
func AnchorHeadings(fragment string, anchor func(text string, index int) string) (string, []Heading, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", nil, fmt.Errorf("parse html: %w", err)
	}

	var headings []Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				text := textContent(n)
				id := attr(n, "id")
				if id == "" {
					id = anchor(text, len(headings))
					n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
				}
				headings = append(headings, Heading{Text: text, Level: level, ID: id})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	var out strings.Builder
	for _, n := range nodes {
		walk(n)
		if err := html.Render(&out, n); err != nil {
			return "", nil, fmt.Errorf("render html: %w", err)
		}
	}
	return out.String(), headings, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
