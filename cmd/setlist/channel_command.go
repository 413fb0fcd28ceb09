package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/channel"
)

func newChannelCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Preview the configured YouTube channel's latest uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Channel.URL == "" && cfg.Channel.PreviewURL == "" {
				return fmt.Errorf("no channel configured; set [channel] url or preview_url in the config file")
			}

			out := cmd.OutOrStdout()
			if cfg.Channel.Name != "" {
				fmt.Fprintln(out, cfg.Channel.Name)
			}
			if cfg.Channel.URL != "" {
				fmt.Fprintln(out, cfg.Channel.URL)
			}

			// A pinned preview video takes priority over the feed.
			if cfg.Channel.PreviewURL != "" {
				videoID := channel.ExtractVideoID(cfg.Channel.PreviewURL)
				if videoID == "" {
					return fmt.Errorf("could not extract a video ID from preview_url %q", cfg.Channel.PreviewURL)
				}
				fmt.Fprintf(out, "\nPinned video: %s\n", channel.WatchURL(videoID))
				return nil
			}

			channelID := channel.ExtractChannelID(cfg.Channel.URL)
			if channelID == "" {
				return fmt.Errorf("could not extract a channel ID from url %q", cfg.Channel.URL)
			}

			timeout := time.Duration(cfg.Channel.RequestTimeout) * time.Second
			ctx.logger().Debug("fetching channel feed", "channel_id", channelID, "timeout", timeout)
			client := channel.NewClient(nil, timeout)
			videos, err := client.LatestVideos(cmd.Context(), channelID, limit)
			if err != nil {
				// The preview is decorative; the channel link above still works.
				ctx.logger().Warn("channel feed unavailable", "error", err)
				fmt.Fprintln(out, "\nFeed unavailable; open the channel link above")
				return nil
			}
			if len(videos) == 0 {
				fmt.Fprintln(out, "\nNo uploads found")
				return nil
			}

			fmt.Fprintln(out)
			for _, video := range videos {
				published := ""
				if !video.Published.IsZero() {
					published = video.Published.Format("2006-01-02")
				}
				fmt.Fprintf(out, "%-10s  %s\n            %s\n", published, video.Title, channel.WatchURL(video.ID))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 6, "How many uploads to show")
	return cmd
}
