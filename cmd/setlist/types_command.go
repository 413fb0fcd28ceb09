package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/library"
)

func newTypesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Manage song type tags",
	}

	cmd.AddCommand(newTypesListCommand(ctx))
	cmd.AddCommand(newTypesAddCommand(ctx))
	cmd.AddCommand(newTypesRemoveCommand(ctx))
	return cmd
}

func newTypesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom and observed song types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				types, err := store.SongTypes(cmd.Context())
				if err != nil {
					return err
				}
				if len(types) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No song types yet")
					return nil
				}
				for _, name := range types {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}

func newTypesAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a custom song type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				if err := store.AddSongType(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added song type %q\n", args[0])
				return nil
			})
		},
	}
}

func newTypesRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom song type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				if err := store.RemoveSongType(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed song type %q\n", args[0])
				return nil
			})
		},
	}
}
