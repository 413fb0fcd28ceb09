// Package library manages the persistent song library backed by SQLite.
//
// The library holds one Song row per grouping key, the play Entries attached
// to it, the per-date sequence counters used to order plays within a day, and
// the user-contributed song type tags. Every mutating operation runs inside a
// single transaction, so a failed write leaves no partial state behind.
package library
