package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExcelExtractor_Extract(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Budget"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	_ = f.SetCellValue("Budget", "A1", "Item")
	_ = f.SetCellValue("Budget", "B1", "Cost")
	_ = f.SetCellValue("Budget", "A2", "Servers")
	_ = f.SetCellValue("Budget", "C2", 1200)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	e := &excelExtractor{}
	text, err := e.Extract(context.Background(), "budget.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "Sheet: Budget") {
		t.Fatalf("expected sheet heading, got %q", text)
	}
	if !strings.Contains(text, "Item | Cost") {
		t.Fatalf("expected delimited header row, got %q", text)
	}
	// Empty B2 is dropped, not rendered as a blank cell.
	if !strings.Contains(text, "Servers | 1200") {
		t.Fatalf("expected non-empty cells joined, got %q", text)
	}
}

func TestExcelExtractor_EmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	e := &excelExtractor{}
	_, err = e.Extract(context.Background(), "empty.xlsx", buf.Bytes())
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestExcelExtractor_Corrupt(t *testing.T) {
	e := &excelExtractor{}
	_, err := e.Extract(context.Background(), "broken.xlsx", []byte("not a workbook"))
	if !errors.Is(err, ErrCorruptStructure) {
		t.Fatalf("expected ErrCorruptStructure, got %v", err)
	}
}
