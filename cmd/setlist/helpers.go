package main

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/library"
	"setlist/internal/songkey"
	"setlist/internal/textutil"
)

func todayString() string {
	return time.Now().Format("2006-01-02")
}

// confirm prompts on the command's streams and accepts y/yes.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// resolveKey maps a name plus optional singer argument to a grouping key.
func resolveKey(args []string) string {
	name := args[0]
	singer := ""
	if len(args) > 1 {
		singer = args[1]
	}
	return songkey.Key(name, singer)
}

func displayName(song *library.Song) string {
	if song.NameAlt != "" {
		return fmt.Sprintf("%s (%s)", song.Name, song.NameAlt)
	}
	return song.Name
}

func displaySinger(song *library.Song) string {
	singer := library.DisplaySinger(song.Singer)
	if song.SingerAlt != "" {
		return fmt.Sprintf("%s (%s)", singer, song.SingerAlt)
	}
	return singer
}

// suggestionThreshold is the minimum cosine similarity for a fuzzy match
// to be offered as a "did you mean" candidate.
const suggestionThreshold = 0.3

// songNotFound builds the lookup error for a missing song, adding fuzzy
// name suggestions when the library contains anything close.
func songNotFound(ctx context.Context, store *library.Store, args []string) error {
	base := fmt.Errorf("song %q: %w", args[0], library.ErrNotFound)

	songs, err := store.List(ctx)
	if err != nil {
		return base
	}
	query := textutil.NewFingerprint(strings.Join(args, " "))
	if query == nil {
		return base
	}

	type scored struct {
		label string
		score float64
	}
	var candidates []scored
	for _, song := range songs {
		text := song.Name + " " + song.NameAlt + " " + song.Singer + " " + song.SingerAlt
		score := textutil.CosineSimilarity(query, textutil.NewFingerprint(text))
		if score >= suggestionThreshold {
			candidates = append(candidates, scored{label: displayName(song), score: score})
		}
	}
	if len(candidates) == 0 {
		return base
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	labels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		labels = append(labels, c.label)
	}
	return fmt.Errorf("%w (did you mean %s?)", base, strings.Join(labels, ", "))
}

func formatDates(dates []string) string {
	if len(dates) == 0 {
		return "-"
	}
	return strings.Join(dates, ", ")
}
