package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/export"
	"setlist/internal/library"
	"setlist/internal/parse"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		date   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import song plays from a log file, delimited text, or spreadsheet",
		Long: `Import song plays in bulk.

Spreadsheets (.xlsx) are read in template column order. Text input is parsed
with the timestamped stream-log grammar by default, or as simple delimited
lines (name, singer, date) with --format simple. Pass "-" or no file to read
text from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = todayString()
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			raws, err := parseImport(cmd, path, format, date)
			if err != nil {
				return err
			}
			if len(raws) == 0 {
				return fmt.Errorf("no parseable song entries found")
			}
			ctx.logger().Debug("parsed import", "source", path, "entries", len(raws))

			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				added, err := store.MergeAll(cmd.Context(), raws)
				if err != nil {
					return fmt.Errorf("imported %d of %d entries: %w", added, len(raws), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d song entr%s\n", added, pluralYies(added))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date for entries that carry none (defaults to today)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: timestamped, simple, or xlsx (default by extension)")
	return cmd
}

func parseImport(cmd *cobra.Command, path, format, date string) ([]library.RawEntry, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			format = "xlsx"
		} else {
			format = "timestamped"
		}
	}

	switch format {
	case "xlsx":
		if path == "" || path == "-" {
			return nil, fmt.Errorf("spreadsheet import requires a file path")
		}
		rows, err := export.ReadRows(path)
		if err != nil {
			return nil, err
		}
		return parse.Rows(rows, date), nil
	case "timestamped", "simple":
		text, err := readImportText(cmd, path)
		if err != nil {
			return nil, err
		}
		if format == "simple" {
			return parse.Simple(text, date), nil
		}
		return parse.Timestamped(text, date), nil
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
}

func readImportText(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

func pluralYies(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
