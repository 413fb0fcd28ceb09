// Package export renders the library in its interchange formats: CSV and
// XLSX summaries for spreadsheet consumers, an XLSX import template, and a
// whole-library JSON document for backup and restore.
package export

import (
	"strconv"
	"strings"

	"setlist/internal/library"
)

// utf8BOM prefixes CSV output so spreadsheet applications decode non-Latin
// text correctly.
const utf8BOM = "\ufeff"

const csvHeader = "Song Name,Singer,Date,Play Count"

// CSV renders the per-song summary. Name, singer and date are quoted (with
// embedded quotes doubled), the play count is bare.
func CSV(songs []*library.Song) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, song := range songs {
		b.WriteString(quote(song.Name))
		b.WriteByte(',')
		b.WriteString(quote(song.Singer))
		b.WriteByte(',')
		b.WriteString(quote(song.FirstDate))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(song.PlayCount))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
