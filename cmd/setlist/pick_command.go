package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/library"
	"setlist/internal/songkey"
)

func newPickCommand(ctx *commandContext) *cobra.Command {
	var (
		count    int
		singer   string
		songType string
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick random songs from the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				if count < 1 {
					return fmt.Errorf("count must be at least 1")
				}

				songs, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				songs = library.FilterSongs(songs, filter)

				matched := songs[:0]
				for _, song := range songs {
					if singer != "" && songkey.Fold(song.Singer) != songkey.Fold(singer) {
						continue
					}
					if songType != "" && song.SongType != songType {
						continue
					}
					matched = append(matched, song)
				}
				if len(matched) == 0 {
					return fmt.Errorf("no songs match the given filters")
				}

				rand.Shuffle(len(matched), func(i, j int) {
					matched[i], matched[j] = matched[j], matched[i]
				})
				if count < len(matched) {
					matched = matched[:count]
				}

				out := cmd.OutOrStdout()
				if len(matched) == 1 {
					song := matched[0]
					fmt.Fprintf(out, "%s by %s\n", displayName(song), displaySinger(song))
					if song.SongType != "" {
						fmt.Fprintf(out, "Type:  %s\n", song.SongType)
					}
					fmt.Fprintf(out, "Plays: %d\n", song.PlayCount)
					fmt.Fprintf(out, "Dates: %s\n", formatDates(song.Dates))
					return nil
				}
				for _, song := range matched {
					fmt.Fprintf(out, "%s by %s\n", displayName(song), displaySinger(song))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many songs to pick")
	cmd.Flags().StringVarP(&singer, "singer", "s", "", "Only songs by this singer")
	cmd.Flags().StringVarP(&songType, "type", "t", "", "Only songs with this exact type tag")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only songs whose name, singer, or type contains this text")
	return cmd
}
