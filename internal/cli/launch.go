package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetview/internal/apperr"
)

func newLaunchCmd() *cobra.Command {
	var (
		csv   string
		pairs []string
	)

	cmd := &cobra.Command{
		Use:   "launch <tool>",
		Short: "Print the URL that opens a tool with the given selectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			sel, err := selectorsFrom(csv, pairs)
			if err != nil {
				return err
			}
			target, err := a.launcher.URL(args[0], sel)
			if err != nil {
				return errors.New(apperr.Message(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}

	addSelectorFlags(cmd, &csv, &pairs)
	return cmd
}
