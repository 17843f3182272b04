// Package params reads viewer selectors from a query string.
package params

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a logical selector and the query keys it may arrive under, in
// priority order. The first alias is the canonical name.
type Param struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// Keys returns the canonical name followed by its aliases.
func (p Param) Keys() []string {
	return append([]string{p.Name}, p.Aliases...)
}

var (
	CSV                = Param{Name: "csv"}
	LessonGroup        = Param{Name: "lesson_group", Aliases: []string{"lessonGroup"}}
	ID                 = Param{Name: "id", Aliases: []string{"item_id", "itemId"}}
	Title              = Param{Name: "title"}
	PresentationFilter = Param{Name: "presentation_filter", Aliases: []string{"presentation"}}
	VerticalLevel      = Param{Name: "vertical_level", Aliases: []string{"verticalLevel"}}
)

// Selectors is the immutable bag of query values for one request.
type Selectors struct {
	values url.Values
}

// FromQuery copies v so later mutation of the caller's map is not observed.
func FromQuery(v url.Values) Selectors {
	cp := make(url.Values, len(v))
	for k, vals := range v {
		cp[k] = append([]string(nil), vals...)
	}
	return Selectors{values: cp}
}

// FromRawQuery parses a raw query string. A leading '?' is allowed.
func FromRawQuery(raw string) (Selectors, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Selectors{}, err
	}
	return Selectors{values: v}, nil
}

// FromMap builds selectors from single-valued pairs.
func FromMap(m map[string]string) Selectors {
	v := make(url.Values, len(m))
	for k, val := range m {
		v.Set(k, val)
	}
	return Selectors{values: v}
}

// Get returns the first non-empty trimmed value among keys.
func (s Selectors) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(s.values.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

// Param returns the value of p under any of its keys.
func (s Selectors) Param(p Param) string {
	return s.Get(p.Keys()...)
}

// Has reports whether key is present, even with an empty value.
func (s Selectors) Has(key string) bool {
	return s.values.Has(key)
}

// All returns a single-valued copy of every parameter.
func (s Selectors) All() map[string]string {
	out := make(map[string]string, len(s.values))
	for k := range s.values {
		out[k] = s.values.Get(k)
	}
	return out
}

// ParseVerticalLevel accepts "2" or "h2" (case-insensitive) and reports
// whether the value is a heading level between 1 and 6.
func ParseVerticalLevel(raw string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return 0, false
	}
	v = strings.TrimPrefix(v, "h")
	n, err := strconv.Atoi(leadingDigits(v))
	if err != nil || n < 1 || n > 6 {
		return 0, false
	}
	return n, true
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
