package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetview/internal/apperr"
	"github.com/dgallion1/sheetview/internal/render"
)

func newViewCmd() *cobra.Command {
	var (
		csv    string
		pairs  []string
		format string
		style  string
	)

	cmd := &cobra.Command{
		Use:   "view <tool>",
		Short: "Build a tool's view-model from a CSV",
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

			res, err := a.driver.Run(cmd.Context(), args[0], sel)
			if err != nil {
				a.log.Debug("view failed", "tool", args[0], "error", err)
				return errors.New(apperr.Message(err))
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return render.JSON(out, res, true)
			case "pretty":
				return writePretty(cmd, a, out, res.Model, style)
			default:
				return apperr.Input("Unknown --format %q, expected json or pretty", format)
			}
		},
	}

	addSelectorFlags(cmd, &csv, &pairs)
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|pretty")
	cmd.Flags().StringVar(&style, "style", "", "glamour style for pretty output (dark, light, notty; default auto)")
	return cmd
}

func writePretty(cmd *cobra.Command, a *app, out io.Writer, model any, style string) error {
	md, err := render.Markdown(model)
	if err != nil {
		return err
	}
	term := render.NewTerminal(style, 80, render.PolicyFor(a.cfg.RenderReadyTimeout))
	text, err := term.Render(cmd.Context(), md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}
