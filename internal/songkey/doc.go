// Package songkey derives the canonical grouping identity for song records.
//
// Two plays belong to the same song exactly when their keys match. The key
// joins the case-folded song name and singer with a fixed separator; it must
// be computed identically at ingestion, lookup, and rename time.
package songkey
