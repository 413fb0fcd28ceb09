// Command setlist tracks songs played on streams: it ingests play entries
// from text logs, spreadsheets and manual input, groups duplicates into
// per-song records, and renders lists, statistics and exports.
package main
