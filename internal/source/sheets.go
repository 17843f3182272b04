package source

import (
	"net/url"
	"strings"
)

const sheetsOutputCSV = "output=csv"

// PublishHint tells the user how to make a Google Sheet fetchable.
const PublishHint = "Make sure the sheet is published (File → Share → Publish to web)"

// IsGoogleSheetsURL reports whether raw points at a Google Sheets spreadsheet.
func IsGoogleSheetsURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), "docs.google.com") &&
		strings.HasPrefix(u.Path, "/spreadsheets")
}

// NormalizeGoogleSheetsURL guarantees exactly one output=csv query pair on a
// Sheets URL, keeping every other pair in its original order. Other URLs are
// returned unchanged. Applying it twice yields the same URL.
func NormalizeGoogleSheetsURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !IsGoogleSheetsURL(raw) {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	var kept []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" || strings.EqualFold(pair, sheetsOutputCSV) {
			continue
		}
		kept = append(kept, pair)
	}
	kept = append(kept, sheetsOutputCSV)

	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String(), nil
}

// appendQueryPair adds key=value after any existing query, before the fragment.
func appendQueryPair(raw, key, value string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)
	if u.RawQuery == "" {
		u.RawQuery = pair
	} else {
		u.RawQuery += "&" + pair
	}
	return u.String(), nil
}
