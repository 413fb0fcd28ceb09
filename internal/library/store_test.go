package library_test

import (
	"os"
	"testing"

	"setlist/internal/testsupport"
)

func TestOpenCreatesDatabaseFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if store.Path() == "" {
		t.Fatal("expected a database path")
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("expected database file on disk: %v", err)
	}
}
