package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"setlist/internal/config"
	"setlist/internal/library"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		nameAlt   string
		singer    string
		singerAlt string
		songType  string
		startTime string
		endTime   string
		date      string
		sequence  int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record a single song play",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return library.ErrNameRequired
			}
			if date == "" {
				date = todayString()
			}

			raw := library.RawEntry{
				Name:      name,
				NameAlt:   strings.TrimSpace(nameAlt),
				Singer:    strings.TrimSpace(singer),
				SingerAlt: strings.TrimSpace(singerAlt),
				SongType:  strings.TrimSpace(songType),
				StartTime: strings.TrimSpace(startTime),
				EndTime:   strings.TrimSpace(endTime),
				Date:      strings.TrimSpace(date),
				Sequence:  sequence,
			}
			if raw.StartTime != "" && raw.EndTime != "" {
				raw.Duration = raw.StartTime + " ~ " + raw.EndTime
			} else if raw.StartTime != "" {
				raw.Duration = raw.StartTime
			}

			return ctx.withLockedStore(func(cfg *config.Config, store *library.Store) error {
				song, err := store.Merge(cmd.Context(), raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s by %s (%d play(s))\n",
					displayName(song), displaySinger(song), song.PlayCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&nameAlt, "name-alt", "", "Alternate (e.g. romanized) song name")
	cmd.Flags().StringVarP(&singer, "singer", "s", "", "Singer name")
	cmd.Flags().StringVar(&singerAlt, "singer-alt", "", "Alternate singer name")
	cmd.Flags().StringVarP(&songType, "type", "t", "", "Song type tag")
	cmd.Flags().StringVar(&startTime, "start", "", "Start time within the stream (HH:MM:SS)")
	cmd.Flags().StringVar(&endTime, "end", "", "End time within the stream (HH:MM:SS)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Play date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().IntVar(&sequence, "sequence", 0, "Explicit play ordinal (0 assigns the next for the date)")
	return cmd
}
