package textutil

import "testing"

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected []string
	}{
		{"latin words", "Kimiiro Signal", []string{"kimiiro", "signal"}},
		{"drops single letters", "a song", []string{"song"}},
		{"cjk bigrams", "君色シグナル", []string{"君色", "色シ", "シグ", "グナ", "ナル"}},
		{"single cjk char", "曲", []string{"曲"}},
		{"mixed script", "テスト song", []string{"テス", "スト", "song"}},
		{"empty", "", nil},
		{"punctuation only", "---", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.text)
			if len(got) != len(tc.expected) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.text, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("Tokenize(%q) = %v, want %v", tc.text, got, tc.expected)
				}
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	identical := CosineSimilarity(NewFingerprint("君色シグナル"), NewFingerprint("君色シグナル"))
	if identical < 0.999 {
		t.Fatalf("identical text scored %f, want ~1", identical)
	}

	near := CosineSimilarity(NewFingerprint("君色シグナル"), NewFingerprint("君色シグナル (Kimiiro Signal)"))
	unrelated := CosineSimilarity(NewFingerprint("君色シグナル"), NewFingerprint("青いベンチ"))
	if near <= unrelated {
		t.Fatalf("expected near match %f to beat unrelated %f", near, unrelated)
	}
	if unrelated != 0 {
		t.Fatalf("unrelated titles scored %f, want 0", unrelated)
	}
}

func TestCosineSimilarityNilSafe(t *testing.T) {
	if got := CosineSimilarity(nil, NewFingerprint("song")); got != 0 {
		t.Fatalf("expected 0 for nil fingerprint, got %f", got)
	}
	if got := CosineSimilarity(NewFingerprint("!!"), NewFingerprint("song")); got != 0 {
		t.Fatalf("expected 0 for empty fingerprint, got %f", got)
	}
}
