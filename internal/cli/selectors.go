package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/params"
)

// addSelectorFlags registers --csv and the repeatable --param key=value.
func addSelectorFlags(cmd *cobra.Command, csv *string, pairs *[]string) {
	cmd.Flags().StringVar(csv, "csv", "", "CSV or published Google Sheet URL")
	cmd.Flags().StringArrayVarP(pairs, "param", "p", nil, "selector as key=value, e.g. lesson_group=l1 (repeatable)")
}

func selectorsFrom(csv string, pairs []string) (params.Selectors, error) {
	m := make(map[string]string, len(pairs)+1)
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return params.Selectors{}, apperr.Input("Invalid --param %q, expected key=value", p)
		}
		m[strings.TrimSpace(k)] = v
	}
	if csv != "" {
		m[params.CSV.Name] = csv
	}
	return params.FromMap(m), nil
}
