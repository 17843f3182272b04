package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamAliases(t *testing.T) {
	s, err := FromRawQuery("?csv=https%3A%2F%2Fexample.com%2Fa.csv&lessonGroup=week1&itemId=42")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/a.csv", s.Param(CSV))
	assert.Equal(t, "week1", s.Param(LessonGroup))
	assert.Equal(t, "42", s.Param(ID))
	assert.Equal(t, "", s.Param(Title))
}

func TestCanonicalNameWins(t *testing.T) {
	s := FromQuery(url.Values{
		"presentation_filter": {"demo"},
		"presentation":        {"other"},
	})
	assert.Equal(t, "demo", s.Param(PresentationFilter))
}

func TestEmptyValueFallsThrough(t *testing.T) {
	s := FromQuery(url.Values{"id": {"  "}, "item_id": {"7"}})
	assert.Equal(t, "7", s.Param(ID))
	assert.True(t, s.Has("id"))
}

func TestFromQueryCopies(t *testing.T) {
	v := url.Values{"title": {"A"}}
	s := FromQuery(v)
	v.Set("title", "B")
	assert.Equal(t, "A", s.Param(Title))
}

func TestParseVerticalLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2", 2, true},
		{"h3", 3, true},
		{" H6 ", 6, true},
		{"1", 1, true},
		{"7", 0, false},
		{"0", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseVerticalLevel(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
