package songkey_test

import (
	"testing"

	"setlist/internal/songkey"
)

func TestKey(t *testing.T) {
	cases := []struct {
		name     string
		song     string
		singer   string
		expected string
	}{
		{"simple", "Song A", "Singer X", "song a_singer x"},
		{"case insensitive", "SONG A", "SINGER x", "song a_singer x"},
		{"empty singer", "Song A", "", "song a_"},
		{"unicode untouched", "曲", "歌手", "曲_歌手"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := songkey.Key(tc.song, tc.singer); got != tc.expected {
				t.Fatalf("Key(%q, %q) = %q, want %q", tc.song, tc.singer, got, tc.expected)
			}
		})
	}
}

func TestKeyCaseVariantsCollide(t *testing.T) {
	if songkey.Key("Song A", "Singer X") != songkey.Key("song a", "singer x") {
		t.Fatal("expected case variants to produce the same key")
	}
}

func TestFold(t *testing.T) {
	if got := songkey.Fold("ＡBc"); got == "" {
		t.Fatalf("Fold returned empty string")
	}
	if songkey.Fold("ABC") != songkey.Fold("abc") {
		t.Fatal("expected folded variants to match")
	}
}
