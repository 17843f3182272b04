// Package parser turns fetched text into records and reads structure out of
// the HTML and Markdown those records carry.
package parser

import "strings"

// Record is one CSV data row keyed by header name. Header case is kept as
// read; lookups through Field ignore it.
type Record map[string]string

// Field returns the trimmed value of the first alias with a non-empty value.
// An exact header match is tried before a case-insensitive one. Missing
// fields resolve to "".
func (r Record) Field(aliases ...string) string {
	for _, a := range aliases {
		if v := strings.TrimSpace(r.Raw(a)); v != "" {
			return v
		}
	}
	return ""
}

// Raw returns the untrimmed value stored under name, matched exactly first
// and then case-insensitively. Parse keeps one column per case-folded name,
// so the fallback has at most one candidate.
func (r Record) Raw(name string) string {
	if v, ok := r[name]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Has reports whether any alias names a column of the record.
func (r Record) Has(aliases ...string) bool {
	for _, a := range aliases {
		if _, ok := r[a]; ok {
			return true
		}
		for k := range r {
			if strings.EqualFold(k, a) {
				return true
			}
		}
	}
	return false
}

// ExpandEscapedNewlines turns the two-character sequence \n into a newline.
// Sheets cells often carry markdown written that way.
func ExpandEscapedNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
