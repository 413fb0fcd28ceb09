package testsupport

import (
	"context"
	"testing"

	"setlist/internal/config"
	"setlist/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MergeEntry merges one raw entry for tests using the provided store.
func MergeEntry(t testing.TB, store *library.Store, raw library.RawEntry) *library.Song {
	t.Helper()

	song, err := store.Merge(context.Background(), raw)
	if err != nil {
		t.Fatalf("store.Merge: %v", err)
	}
	return song
}
