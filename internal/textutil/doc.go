// Package textutil provides token-based text fingerprinting and cosine
// similarity for fuzzy matching of song and singer names.
//
// Tokenization lowercases the input, emits one token per alphanumeric run,
// and breaks CJK runs into character bigrams. Fingerprints are normalized
// term-frequency vectors, so similarity comparisons are cheap.
package textutil
