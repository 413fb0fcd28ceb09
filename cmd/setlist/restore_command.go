package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/export"
	"setlist/internal/library"
)

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace the library with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			songs, err := export.ParseJSON(raw)
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Replace the entire library with %d song(s) from %s?", len(songs), args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled")
				return nil
			}

			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				ctx.logger().Debug("restoring backup", "source", args[0], "songs", len(songs))
				if err := store.ReplaceAll(cmd.Context(), songs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %d song(s)\n", len(songs))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
