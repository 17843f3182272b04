package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
	"github.com/dgallion1/sheetview/internal/viewmodel"
)

// fakeFetcher serves CSV text by URL and counts calls.
type fakeFetcher struct {
	docs  map[string]string
	err   error
	calls int
}

func (f *fakeFetcher) FetchCSV(_ context.Context, rawURL string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	text, ok := f.docs[rawURL]
	if !ok {
		return "", apperr.Fetch("HTTP error! status: 404")
	}
	return text, nil
}

func run(t *testing.T, tool, csv string, sel map[string]string) (Result, error) {
	t.Helper()
	f := &fakeFetcher{docs: map[string]string{"https://example.com/data.csv": csv}}
	if sel == nil {
		sel = map[string]string{}
	}
	sel["csv"] = "https://example.com/data.csv"
	return NewDriver(Default(), f, nil).Run(context.Background(), tool, params.FromMap(sel))
}

func TestDefaultRegistryOrder(t *testing.T) {
	var names []string
	for _, d := range Default().List() {
		names = append(names, d.Name)
		assert.NotNil(t, d.Map, d.Name)
	}
	assert.Equal(t, []string{"content", "concat", "mindmap", "mdslides", "reveal", "timeline"}, names)
}

func TestRun_UnknownTool(t *testing.T) {
	_, err := run(t, "nope", "a\n1", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
}

func TestRun_MissingSelectorsFailBeforeFetch(t *testing.T) {
	f := &fakeFetcher{}
	d := NewDriver(Default(), f, nil)

	_, err := d.Run(context.Background(), "content", params.FromMap(nil))
	require.ErrorIs(t, err, apperr.ErrInput)
	assert.Contains(t, err.Error(), "No CSV URL provided")

	_, err = d.Run(context.Background(), "content", params.FromMap(map[string]string{"csv": "https://x/y.csv"}))
	require.ErrorIs(t, err, apperr.ErrInput)
	assert.Contains(t, err.Error(), "No lesson_group specified")

	assert.Equal(t, 0, f.calls)
}

func TestRun_AliasedSelector(t *testing.T) {
	csv := "heading,content,lesson_group\n<h2>A</h2>,body,l1\n"
	res, err := run(t, "content", csv, map[string]string{"lessonGroup": "l1"})
	require.NoError(t, err)
	assert.Len(t, res.Model.(viewmodel.ContentView).Items, 1)
}

func TestRun_FetchErrorPropagates(t *testing.T) {
	f := &fakeFetcher{err: apperr.Fetch("HTTP error! status: 500")}
	d := NewDriver(Default(), f, nil)
	_, err := d.Run(context.Background(), "timeline", params.FromMap(map[string]string{"csv": "https://x/y.csv"}))
	require.ErrorIs(t, err, apperr.ErrFetch)
	assert.Equal(t, "HTTP error! status: 500", apperr.Message(err))
}

func TestRun_EmptyCSVIsParseError(t *testing.T) {
	_, err := run(t, "timeline", "Year,Headline\n", nil)
	require.ErrorIs(t, err, apperr.ErrParse)
}

func TestDefinitionValidate_OptionalOnly(t *testing.T) {
	sel := params.FromMap(map[string]string{"csv": "https://x/y.csv"})
	assert.NoError(t, Reveal.Validate(sel))
	assert.NoError(t, Timeline.Validate(sel))
	assert.ErrorIs(t, MindMap.Validate(sel), apperr.ErrInput)
	assert.ErrorIs(t, MarkdownSlides.Validate(sel), apperr.ErrInput)
	assert.ErrorIs(t, Concat.Validate(sel), apperr.ErrInput)
}
