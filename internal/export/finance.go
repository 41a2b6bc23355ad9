// Package export writes transaction reports as CSV or XLSX files.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// FilterByDateRange keeps transactions within the inclusive [start, end]
// window; a nil bound is open.
func FilterByDateRange(items []domain.Transaction, start, end *time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(items))
	for _, t := range items {
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FinanceCSV renders transactions as CSV.
func FinanceCSV(items []domain.Transaction) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"id", "description", "amount", "category", "date", "type", "notes"})
	for _, t := range items {
		_ = w.Write([]string{
			t.ID,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.Category,
			t.Date.Format(dateLayout),
			string(t.Type),
			t.Notes,
		})
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FinanceXLSX renders transactions as a styled spreadsheet.
func FinanceXLSX(items []domain.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Finance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"ID", "Description", "Amount", "Category", "Date", "Type", "Notes"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, t := range items {
		row := r + 2
		values := []any{
			t.ID,
			t.Description,
			t.Amount,
			t.Category,
			t.Date.Format(dateLayout),
			string(t.Type),
			t.Notes,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 26)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "F", 10)
	_ = f.SetColWidth(sheet, "G", "G", 32)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "G1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
