package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"setlist/internal/export"
)

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the spreadsheet import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target, err := exportTarget(cfg, out, "song_template.xlsx")
			if err != nil {
				return err
			}
			if err := export.WriteTemplate(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote import template to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults into the export directory)")
	return cmd
}
