package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellDelimiter joins non-empty cells within a row.
const cellDelimiter = " | "

// excelExtractor flattens XLSX workbooks into sheet sections of joined rows.
type excelExtractor struct{}

func (e *excelExtractor) Extract(_ context.Context, _ string, data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptStructure, err)
	}
	defer func() { _ = f.Close() }()

	var sheets []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if section := sheetSection(sheet, rows); section != "" {
			sheets = append(sheets, section)
		}
	}
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: no data found in workbook", ErrNoText)
	}
	return strings.Join(sheets, "\n\n"), nil
}

// sheetSection renders a sheet as "Sheet: <name>" followed by one line per
// non-empty row, cells joined with the delimiter.
func sheetSection(name string, rows [][]string) string {
	var lines []string
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, cellDelimiter))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "Sheet: " + name + "\n" + strings.Join(lines, "\n")
}
