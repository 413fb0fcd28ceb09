package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/internal/config"
	"setlist/internal/library"
)

// writeTestConfig writes a config file whose paths live under a temp dir and
// returns its path plus the loaded config.
func writeTestConfig(t *testing.T) (string, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("[paths]\ndata_dir = %q\nlog_dir = %q\nexport_dir = %q\n",
		filepath.Join(dir, "data"),
		filepath.Join(dir, "logs"),
		filepath.Join(dir, "exports"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return path, cfg
}

func seedSingleEntry(t *testing.T, cfg *config.Config) string {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	song, err := store.Merge(ctx, library.RawEntry{Name: "Song A", Singer: "Singer X", Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if err := store.LoadEntries(ctx, song); err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	return song.Entries[0].ID
}

func countEntries(t *testing.T, cfg *config.Config, key string) int {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	song, err := store.GetByKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if song == nil {
		return 0
	}
	if err := store.LoadEntries(ctx, song); err != nil {
		t.Fatalf("LoadEntries: %v", err)
	}
	return len(song.Entries)
}

func TestDeleteEntryCommandRequiresConfirmation(t *testing.T) {
	cfgPath, cfg := writeTestConfig(t)
	entryID := seedSingleEntry(t, cfg)

	// Declining the prompt leaves the play untouched.
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"-c", cfgPath, "songs", "delete-entry", entryID})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete-entry failed: %v", err)
	}
	if !strings.Contains(out.String(), "Delete cancelled") {
		t.Fatalf("expected cancellation message, got %q", out.String())
	}
	if got := countEntries(t, cfg, "song a_singer x"); got != 1 {
		t.Fatalf("expected play kept after declined prompt, found %d entries", got)
	}

	// --yes skips the prompt and deletes.
	again := newRootCommand()
	out.Reset()
	again.SetOut(&out)
	again.SetErr(&out)
	again.SetArgs([]string{"-c", cfgPath, "songs", "delete-entry", "--yes", entryID})
	if err := again.Execute(); err != nil {
		t.Fatalf("delete-entry --yes failed: %v", err)
	}
	if got := countEntries(t, cfg, "song a_singer x"); got != 0 {
		t.Fatalf("expected play deleted, found %d entries", got)
	}
}
