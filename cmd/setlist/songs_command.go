package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/library"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "songs",
		Short: "List and manage recorded songs",
	}

	cmd.AddCommand(newSongsListCommand(ctx))
	cmd.AddCommand(newSongsShowCommand(ctx))
	cmd.AddCommand(newSongsByDateCommand(ctx))
	cmd.AddCommand(newSongsEditCommand(ctx))
	cmd.AddCommand(newSongsDeleteCommand(ctx))
	cmd.AddCommand(newSongsDeleteEntryCommand(ctx))
	cmd.AddCommand(newSongsClearCommand(ctx))
	return cmd
}

func newSongsListCommand(ctx *commandContext) *cobra.Command {
	var (
		filter   string
		asJSON   bool
		songType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all songs with play counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				songs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				songs = library.FilterSongs(songs, filter)
				if songType != "" {
					matched := songs[:0]
					for _, song := range songs {
						if song.SongType == songType {
							matched = append(matched, song)
						}
					}
					songs = matched
				}

				if asJSON {
					return writeJSON(cmd, songs)
				}

				rows := make([][]string, 0, len(songs))
				for _, song := range songs {
					rows = append(rows, []string{
						displayName(song),
						displaySinger(song),
						song.SongType,
						formatDates(song.Dates),
						strconv.Itoa(song.PlayCount),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Song", "Singer", "Type", "Dates", "Plays"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))
				fmt.Fprintf(cmd.OutOrStdout(), "%d song(s)\n", len(songs))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only songs whose name, singer, or type contains this text")
	cmd.Flags().StringVarP(&songType, "type", "t", "", "Only songs with this exact type tag")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSongsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <name> [singer]",
		Short: "Show one song with all of its recorded plays",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				key := resolveKey(args)
				song, err := store.GetByKey(cmd.Context(), key)
				if err != nil {
					return err
				}
				if song == nil {
					return songNotFound(cmd.Context(), store, args)
				}
				if err := store.LoadEntries(cmd.Context(), song); err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd, song)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s by %s\n", displayName(song), displaySinger(song))
				if song.SongType != "" {
					fmt.Fprintf(out, "Type:  %s\n", song.SongType)
				}
				if song.Duration != "" {
					fmt.Fprintf(out, "Time:  %s\n", song.Duration)
				}
				fmt.Fprintf(out, "Plays: %d\n", song.PlayCount)
				fmt.Fprintf(out, "Dates: %s\n", formatDates(song.Dates))

				rows := make([][]string, 0, len(song.Entries))
				for _, entry := range song.Entries {
					rows = append(rows, []string{
						entry.ID,
						entry.Date,
						strconv.Itoa(entry.Sequence),
						entry.Duration,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Entry ID", "Date", "Seq", "Duration"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func newSongsByDateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "by-date [date]",
		Short: "Show plays grouped by date, in sequence order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				dates := args
				if len(dates) == 0 {
					all, err := store.Dates(cmd.Context())
					if err != nil {
						return err
					}
					dates = all
				}

				out := cmd.OutOrStdout()
				for _, date := range dates {
					entries, err := store.EntriesByDate(cmd.Context(), date)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s (%d song(s))\n", date, len(entries))
					rows := make([][]string, 0, len(entries))
					for _, entry := range entries {
						rows = append(rows, []string{
							strconv.Itoa(entry.Sequence),
							entry.Name,
							library.DisplaySinger(entry.Singer),
							entry.Duration,
						})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"Seq", "Song", "Singer", "Duration"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
					))
				}
				return nil
			})
		},
	}
	return cmd
}

func newSongsEditCommand(ctx *commandContext) *cobra.Command {
	var (
		newName   string
		nameAlt   string
		newSinger string
		singerAlt string
		songType  string
		duration  string
		merge     bool
	)

	cmd := &cobra.Command{
		Use:   "edit <name> [singer]",
		Short: "Edit a song's identity and representative fields",
		Long: `Edit a song. Changing the name or singer may move the song to a new
grouping. When the new grouping already exists the two songs are merged,
which requires --merge to confirm.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				key := resolveKey(args)
				song, err := store.GetByKey(cmd.Context(), key)
				if err != nil {
					return err
				}
				if song == nil {
					return songNotFound(cmd.Context(), store, args)
				}

				fields := library.SongFields{
					Name:      song.Name,
					NameAlt:   song.NameAlt,
					Singer:    song.Singer,
					SingerAlt: song.SingerAlt,
					SongType:  song.SongType,
					Duration:  song.Duration,
				}
				if cmd.Flags().Changed("name") {
					fields.Name = newName
				}
				if cmd.Flags().Changed("name-alt") {
					fields.NameAlt = nameAlt
				}
				if cmd.Flags().Changed("singer") {
					fields.Singer = newSinger
				}
				if cmd.Flags().Changed("singer-alt") {
					fields.SingerAlt = singerAlt
				}
				if cmd.Flags().Changed("type") {
					fields.SongType = songType
				}
				if cmd.Flags().Changed("duration") {
					fields.Duration = duration
				}

				outcome, result, err := store.Rename(cmd.Context(), key, fields, merge)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				switch outcome {
				case library.RenameMerged:
					fmt.Fprintf(out, "Merged into %s by %s (%d play(s))\n",
						displayName(result), displaySinger(result), result.PlayCount)
				default:
					fmt.Fprintf(out, "Updated %s by %s\n", displayName(result), displaySinger(result))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "New song name")
	cmd.Flags().StringVar(&nameAlt, "name-alt", "", "New alternate song name")
	cmd.Flags().StringVar(&newSinger, "singer", "", "New singer name")
	cmd.Flags().StringVar(&singerAlt, "singer-alt", "", "New alternate singer name")
	cmd.Flags().StringVar(&songType, "type", "", "New song type tag")
	cmd.Flags().StringVar(&duration, "duration", "", "New representative duration")
	cmd.Flags().BoolVar(&merge, "merge", false, "Confirm merging when the new name and singer match an existing song")
	return cmd
}

func newSongsDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name> [singer]",
		Short: "Delete a song and all of its plays",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				key := resolveKey(args)
				song, err := store.GetByKey(cmd.Context(), key)
				if err != nil {
					return err
				}
				if song == nil {
					return songNotFound(cmd.Context(), store, args)
				}

				if !yes && !confirm(cmd, fmt.Sprintf("Delete %s by %s and its %d play(s)?",
					displayName(song), displaySinger(song), song.PlayCount)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled")
					return nil
				}

				if err := store.DeleteSong(cmd.Context(), key); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", displayName(song))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newSongsDeleteEntryCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-entry <entry-id>",
		Short: "Delete a single recorded play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				if !yes && !confirm(cmd, fmt.Sprintf("Delete play %s?", args[0])) {
					fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled")
					return nil
				}

				songRemoved, err := store.DeleteEntry(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if songRemoved {
					fmt.Fprintln(cmd.OutOrStdout(), "Deleted the last play; song removed")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Deleted play")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newSongsClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every song, play, and counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				if !yes && !confirm(cmd, "Delete the entire library?") {
					fmt.Fprintln(cmd.OutOrStdout(), "Clear cancelled")
					return nil
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Library cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
