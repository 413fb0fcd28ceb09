package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"setlist/internal/library"
)

var templateRows = [][]string{
	{"Song Name (Japanese) *", "Song Name (English)", "Singer (Japanese)", "Singer (English)", "Song Type", "Start Time", "End Time", "Date"},
	{"君色シグナル", "Kimiiro Signal", "春奈るな", "Haruna Runna", "Opening", "01:22:41", "01:27:21", "2024-01-15"},
	{"青いベンチ", "Aoi Bench", "Soprano", "Soprano", "Ending", "01:27:22", "01:31:45", "2024-01-15"},
	{"テスト曲", "Test Song", "テスト歌手", "Test Singer", "Cover", "01:31:46", "01:35:30", "2024-01-15"},
}

// WriteXLSX writes the per-song summary workbook to path.
func WriteXLSX(path string, songs []*library.Song) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Songs"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Song Name", "Singer", "Date", "Play Count"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, song := range songs {
		row := i + 2
		values := []any{song.Name, song.Singer, song.FirstDate, song.PlayCount}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteTemplate writes the import template workbook to path: the tabular
// column header plus sample rows showing the expected cell order.
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Song Template"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for i, row := range templateRows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write template row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

// ReadRows returns the first sheet's rows as strings, for tabular import.
func ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
