package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/dgallion1/sheetview/internal/apperr"
)

const emptyCSV = "CSV file is empty or could not be parsed"

// Parse reads CSV whose first row is the header and returns one Record per
// non-blank data row, keyed by every header column. Quoted fields may hold
// delimiters, newlines and doubled quotes.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindParse, err, emptyCSV)
	}
	if len(rows) == 0 {
		return nil, apperr.Parse(emptyCSV)
	}

	headers := headerNames(rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec := make(Record, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, apperr.Parse(emptyCSV)
	}
	return records, nil
}

// ParseString is Parse over in-memory text.
func ParseString(text string) ([]Record, error) {
	return Parse(strings.NewReader(text))
}

// headerNames trims names, strips a UTF-8 BOM, and blanks out repeats so the
// first column with a given name wins. Names that differ only in case count as
// repeats, which keeps case-insensitive lookups on a Record unambiguous.
func headerNames(row []string) []string {
	seen := make(map[string]bool, len(row))
	out := make([]string, len(row))
	for i, h := range row {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		key := strings.ToLower(h)
		if h == "" || seen[key] {
			continue
		}
		seen[key] = true
		out[i] = h
	}
	return out
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
