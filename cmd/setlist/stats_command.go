package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/library"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				summary, err := store.Summarize(cmd.Context())
				if err != nil {
					return err
				}
				topSongs, err := store.TopSongs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				topSingers, err := store.TopSingers(cmd.Context(), limit)
				if err != nil {
					return err
				}
				recent, err := store.RecentEntries(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd, map[string]any{
						"summary":    summary,
						"topSongs":   topSongs,
						"topSingers": topSingers,
						"recent":     recent,
					})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Unique songs:   %d\n", summary.UniqueSongs)
				fmt.Fprintf(out, "Total plays:    %d\n", summary.TotalEntries)
				fmt.Fprintf(out, "Unique singers: %d\n", summary.UniqueSingers)
				fmt.Fprintf(out, "Most played:    %d\n\n", summary.MostPlayed)

				songRows := make([][]string, 0, len(topSongs))
				for i, song := range topSongs {
					songRows = append(songRows, []string{
						strconv.Itoa(i + 1),
						displayName(song),
						displaySinger(song),
						strconv.Itoa(song.PlayCount),
					})
				}
				fmt.Fprintln(out, "Top songs")
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Song", "Singer", "Plays"},
					songRows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
				))

				singerRows := make([][]string, 0, len(topSingers))
				for i, singer := range topSingers {
					singerRows = append(singerRows, []string{
						strconv.Itoa(i + 1),
						singer.Singer,
						strconv.Itoa(singer.PlayCount),
					})
				}
				fmt.Fprintln(out, "Top singers")
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Singer", "Plays"},
					singerRows,
					[]columnAlignment{alignRight, alignLeft, alignRight},
				))

				recentRows := make([][]string, 0, len(recent))
				for _, entry := range recent {
					recentRows = append(recentRows, []string{
						entry.Name,
						library.DisplaySinger(entry.Singer),
						entry.Date,
					})
				}
				fmt.Fprintln(out, "Recent plays")
				fmt.Fprintln(out, renderTable(
					[]string{"Song", "Singer", "Date"},
					recentRows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "How many top songs, singers, and recent plays to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of tables")
	return cmd
}
