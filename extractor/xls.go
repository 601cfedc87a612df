package extractor

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
)

// xlsExtractor flattens legacy XLS workbooks with type-aware cell rendering.
type xlsExtractor struct{}

func (x *xlsExtractor) Extract(_ context.Context, _ string, data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptStructure, err)
	}

	var sheets []string
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sheet, err := wb.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}
		var lines []string
		for _, row := range sheet.GetRows() {
			var cells []string
			for _, col := range row.GetCols() {
				if val := cellString(col); val != "" {
					cells = append(cells, val)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, cellDelimiter))
			}
		}
		if len(lines) > 0 {
			sheets = append(sheets, "Sheet: "+sheet.GetName()+"\n"+strings.Join(lines, "\n"))
		}
	}
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: no data found in workbook", ErrNoText)
	}
	return strings.Join(sheets, "\n\n"), nil
}

// cellString renders a cell value, collapsing integral floats (42.0 -> 42).
func cellString(col structure.CellData) string {
	if val := strings.TrimSpace(col.GetString()); val != "" {
		return val
	}
	if num := col.GetFloat64(); num != 0 {
		if num == math.Trunc(num) {
			return strconv.FormatInt(int64(num), 10)
		}
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	if in := col.GetInt64(); in != 0 {
		return strconv.FormatInt(in, 10)
	}
	return ""
}
