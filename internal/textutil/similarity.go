package textutil

// CosineSimilarity scores the token overlap of two fingerprints in [0, 1].
// A song title and a close misspelling score high; disjoint titles score 0,
// as does any nil or zero-norm fingerprint.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}
