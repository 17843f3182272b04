package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

func TestContent_FiltersAndBuildsTOC(t *testing.T) {
	csv := `heading,content,lesson_group
<h1>Intro</h1>,<p>hello</p>,l1
<h2>Setup</h2>,,l1
<h2>Other</h2>,<p>x</p>,l2
,<p>orphan</p>,l1
<h3>Details</h3>,<p>d</p>, l1
`
	res, err := run(t, "content", csv, map[string]string{"lesson_group": "l1"})
	require.NoError(t, err)

	view := res.Model.(viewmodel.ContentView)
	require.Len(t, view.Items, 3)
	assert.Equal(t, "l1", view.LessonGroup)
	assert.Equal(t, 1, view.Items[0].Level)
	assert.Equal(t, "", view.Items[1].ContentHTML)
	assert.Equal(t, "heading-setup-1", view.Items[1].AnchorID)

	require.Len(t, view.TOC, 1)
	intro := view.TOC[0]
	assert.Equal(t, "Intro", intro.Text)
	require.Len(t, intro.Children, 1)
	assert.Equal(t, "Setup", intro.Children[0].Text)
	require.Len(t, intro.Children[0].Children, 1)
	assert.Equal(t, "heading-details-2", intro.Children[0].Children[0].AnchorID)
}

func TestContent_NoMatch(t *testing.T) {
	_, err := run(t, "content", "heading,content,lesson_group\n<h2>A</h2>,b,l1\n", map[string]string{"lesson_group": "zz"})
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Equal(t, `No content found for lesson_group: "zz"`, apperr.Message(err))
}

func TestConcat_JoinsPartsAndAnchorsHeadings(t *testing.T) {
	csv := "item_id,text_p1,textP2,text_p3\n" +
		"x,<p>skip</p>,,\n" +
		` 42 ,<h1>Top</h1>,<h2>Child</h2><p>a</p>,<h2 id="kept">Again</h2>` + "\n"

	res, err := run(t, "concat", csv, map[string]string{"id": "42"})
	require.NoError(t, err)

	view := res.Model.(viewmodel.ConcatView)
	assert.Equal(t, "42", view.ID)
	assert.Contains(t, view.HTML, `<h1 id="heading-top-0">Top</h1>`)
	assert.Contains(t, view.HTML, `<h2 id="heading-child-1">Child</h2>`)
	assert.Contains(t, view.HTML, `<h2 id="kept">Again</h2>`)

	require.Len(t, view.TOC, 1)
	require.Len(t, view.TOC[0].Children, 2)
	assert.Equal(t, "kept", view.TOC[0].Children[1].AnchorID)
}

func TestConcat_NoHeadingsNoTOC(t *testing.T) {
	res, err := run(t, "concat", "id,text_p1\na,<p>plain</p>\n", map[string]string{"id": "a"})
	require.NoError(t, err)
	assert.Nil(t, res.Model.(viewmodel.ConcatView).TOC)
}

func TestConcat_NoMatch(t *testing.T) {
	_, err := run(t, "concat", "id,text_p1\na,<p>plain</p>\n", map[string]string{"itemId": "b"})
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Equal(t, `No row found with id: "b"`, apperr.Message(err))
}

func TestMindMap_EndToEnd(t *testing.T) {
	res, err := run(t, "mindmap", "id,markdown\nA,\"# root\\n## child\"\n", map[string]string{"title": "A"})
	require.NoError(t, err)

	m := res.Model.(viewmodel.MindMap)
	assert.Equal(t, "A", m.ID)
	assert.Equal(t, "# root\n## child", m.MarkdownBody)
	require.NotNil(t, m.Root)
	assert.Equal(t, "root", m.Root.Text)
	require.Len(t, m.Root.Children, 1)
	assert.Equal(t, "child", m.Root.Children[0].Text)
}

func TestMindMap_CaseInsensitiveAndTitleColumn(t *testing.T) {
	res, err := run(t, "mindmap", "Title,MD\nBig Map,# x\n", map[string]string{"title": "big map"})
	require.NoError(t, err)
	assert.Equal(t, "Big Map", res.Model.(viewmodel.MindMap).ID)
}

func TestMindMap_Errors(t *testing.T) {
	_, err := run(t, "mindmap", "id,markdown\nA,\nB,\n", map[string]string{"title": "A"})
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Equal(t, "No valid maps found in CSV", apperr.Message(err))

	_, err = run(t, "mindmap", "id,markdown\nA,# a\nB,# b\n", map[string]string{"title": "C"})
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Equal(t, `Map with id "C" not found. Available maps: "A", "B"`, apperr.Message(err))
}

func TestMarkdownSlides_JoinsNonEmptyParts(t *testing.T) {
	csv := "ID,slides_p1,slides_p2,slides_p3\ndeck,# One,  ,# Three\n"
	res, err := run(t, "mdslides", csv, map[string]string{"id": "deck"})
	require.NoError(t, err)

	deck := res.Model.(viewmodel.MarkdownDeck)
	assert.Equal(t, "# One\n\n# Three", deck.Markdown)
	assert.Equal(t, "\n---\n", deck.Separator)
	assert.Equal(t, "\n--\n", deck.VerticalSeparator)
}

func TestMarkdownSlides_Errors(t *testing.T) {
	csv := "id,slides_p1,slides_p2,slides_p3\nempty,,,\n"

	_, err := run(t, "mdslides", csv, map[string]string{"id": "missing"})
	require.ErrorIs(t, err, apperr.ErrContent)

	_, err = run(t, "mdslides", csv, map[string]string{"id": "empty"})
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Contains(t, err.Error(), "No slide content found")
}

func TestReveal_FilterKeepsRowOrder(t *testing.T) {
	csv := `slide_id,heading_html,content,presentation_filter,notes
s1,<h1>One</h1>,a,demo,
s2,<h1>Other</h1>,b,prod,
s3,<h2>Two</h2>,c,demo,a < b
`
	res, err := run(t, "reveal", csv, map[string]string{"presentation_filter": "demo"})
	require.NoError(t, err)

	deck := res.Model.(viewmodel.RevealDeck)
	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "s1", deck.Slides[0].ID)
	assert.Equal(t, "s3", deck.Slides[1].ID)
	assert.Equal(t, "a &lt; b", deck.Slides[1].NotesHTML)
	assert.Nil(t, deck.Nodes)
}

func TestReveal_NoFilterKeepsAll(t *testing.T) {
	csv := "id,title,presentation\na,<h1>A</h1>,x\nb,<h1>B</h1>,\n"
	res, err := run(t, "reveal", csv, nil)
	require.NoError(t, err)
	assert.Len(t, res.Model.(viewmodel.RevealDeck).Slides, 2)
}

func TestReveal_VerticalGrouping(t *testing.T) {
	csv := `id,heading
a,<h1>A</h1>
b,<h2>B</h2>
c,<h2>C</h2>
d,<h1>D</h1>
`
	res, err := run(t, "reveal", csv, map[string]string{"verticalLevel": "h2"})
	require.NoError(t, err)

	deck := res.Model.(viewmodel.RevealDeck)
	assert.Equal(t, 2, deck.VerticalLevel)
	require.Len(t, deck.Nodes, 2)
	assert.Equal(t, viewmodel.StackVertical, deck.Nodes[0].Kind)
	assert.Len(t, deck.Nodes[0].Slides, 3)
	assert.Equal(t, viewmodel.StackSingle, deck.Nodes[1].Kind)
}

func TestReveal_InvalidVerticalLevelIgnored(t *testing.T) {
	res, err := run(t, "reveal", "id,heading\na,<h1>A</h1>\n", map[string]string{"vertical_level": "h9"})
	require.NoError(t, err)
	deck := res.Model.(viewmodel.RevealDeck)
	assert.Zero(t, deck.VerticalLevel)
	assert.Nil(t, deck.Nodes)
}

func TestReveal_NothingSelected(t *testing.T) {
	_, err := run(t, "reveal", "id,heading,presentation_filter\na,<h1>A</h1>,x\n", map[string]string{"presentation": "y"})
	require.ErrorIs(t, err, apperr.ErrContent)
}

func TestTimeline_DropsAndClamps(t *testing.T) {
	csv := `Year,Month,Day,Headline,Text,Media,Media Caption,Group,Background
2020,13,40,Launch,<p>go</p>,https://img/x.png,cap,g1,#fff
2021,,,,no headline,,,,
,5,5,No year,,,,,
2022abc,0,x,Parsed,,,,,
`
	res, err := run(t, "timeline", csv, nil)
	require.NoError(t, err)

	events := res.Model.(viewmodel.Timeline).Events
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, 2020, first.Year)
	assert.Equal(t, 12, first.Month)
	assert.Equal(t, 31, first.Day)
	require.NotNil(t, first.Media)
	assert.Equal(t, "cap", first.Media.Caption)
	assert.Equal(t, "#fff", first.BackgroundColor)

	second := events[1]
	assert.Equal(t, 2022, second.Year)
	assert.Equal(t, 1, second.Month)
	assert.Equal(t, 1, second.Day)
	assert.Nil(t, second.Media)
}

func TestTimeline_JSONShape(t *testing.T) {
	res, err := run(t, "timeline", "Start Year,Title,Description,Type\n1969,Moon,<b>landing</b>,space\n", nil)
	require.NoError(t, err)

	raw, err := json.Marshal(res.Model)
	require.NoError(t, err)
	assert.JSONEq(t, `{"events":[{
		"start_date":{"year":"1969","month":"1","day":"1"},
		"text":{"headline":"Moon","text":"<b>landing</b>"},
		"group":"space"
	}]}`, string(raw))
}

func TestTimeline_NoValidEvents(t *testing.T) {
	_, err := run(t, "timeline", "Year,Headline\n0,Zero\n", nil)
	require.ErrorIs(t, err, apperr.ErrContent)
	assert.Equal(t, "No valid events found in CSV", apperr.Message(err))
}

func TestLeadingInt(t *testing.T) {
	tests := map[string]int{
		"2020":    2020,
		" 7 ":     7,
		"2020abc": 2020,
		"-500":    -500,
		"abc":     0,
		"":        0,
		"-":       0,
	}
	for in, want := range tests {
		assert.Equal(t, want, leadingInt(in), in)
	}
}

func TestMarkdownSlides_IDMatchIgnoresSurroundingSpace(t *testing.T) {
	csv := "id,slides_p1\n\" deck \",# One\ndeck2,# Two\n"
	res, err := run(t, "mdslides", csv, map[string]string{"id": "deck"})
	require.NoError(t, err)
	assert.Equal(t, "# One", res.Model.(viewmodel.MarkdownDeck).Markdown)

	_, err = run(t, "mdslides", csv, map[string]string{"id": "Deck"})
	require.ErrorIs(t, err, apperr.ErrContent, "id match stays case-sensitive")
}

func TestReveal_FilterIgnoresSurroundingSpace(t *testing.T) {
	csv := "id,heading,presentation_filter\na,<h1>A</h1>,\"demo \"\nb,<h1>B</h1>,Demo\n"
	res, err := run(t, "reveal", csv, map[string]string{"presentation_filter": " demo"})
	require.NoError(t, err)

	slides := res.Model.(viewmodel.RevealDeck).Slides
	require.Len(t, slides, 1)
	assert.Equal(t, "a", slides[0].ID)
}
