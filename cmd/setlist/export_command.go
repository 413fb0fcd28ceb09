package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/export"
	"setlist/internal/library"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the library",
	}

	cmd.AddCommand(newExportCSVCommand(ctx))
	cmd.AddCommand(newExportXLSXCommand(ctx))
	cmd.AddCommand(newExportJSONCommand(ctx))
	return cmd
}

func newExportCSVCommand(ctx *commandContext) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the per-song summary as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				songs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				target, err := exportTarget(cfg, out, "songs_export.csv")
				if err != nil {
					return err
				}
				if err := os.WriteFile(target, export.CSV(songs), 0o644); err != nil {
					return fmt.Errorf("write csv: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d song(s) to %s\n", len(songs), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults into the export directory)")
	return cmd
}

func newExportXLSXCommand(ctx *commandContext) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Write the per-song summary as a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				songs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				target, err := exportTarget(cfg, out, "songs_export.xlsx")
				if err != nil {
					return err
				}
				if err := export.WriteXLSX(target, songs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d song(s) to %s\n", len(songs), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults into the export directory)")
	return cmd
}

func newExportJSONCommand(ctx *commandContext) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Write the whole library as a JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				songs, err := store.ListWithEntries(cmd.Context())
				if err != nil {
					return err
				}
				raw, err := export.JSON(songs)
				if err != nil {
					return err
				}
				target, err := exportTarget(cfg, out, "songs_backup.json")
				if err != nil {
					return err
				}
				if err := os.WriteFile(target, raw, 0o644); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d song(s) to %s\n", len(songs), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults into the export directory)")
	return cmd
}

func exportTarget(cfg *config.Config, out, defaultName string) (string, error) {
	if out != "" {
		expanded, err := config.ExpandPath(out)
		if err != nil {
			return "", err
		}
		return expanded, nil
	}
	if err := os.MkdirAll(cfg.Paths.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(cfg.Paths.ExportDir, defaultName), nil
}
