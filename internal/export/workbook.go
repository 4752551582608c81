// Package export renders duty computations as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"customsduty/internal/duty"
)

// Sheet is one code's computation. Error is set instead of Result when the
// duties could not be computed.
type Sheet struct {
	Name   string
	Result *duty.Result
	Error  string
}

const (
	metaStartRow   = 1
	headerRow      = 6
	firstLineRow   = 7
	maxSheetName   = 31
	descColWidth   = 32
	figureColWidth = 18
)

// WriteWorkbook writes one worksheet per sheet, in order, as XLSX.
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, s := range sheets {
		name := sheetName(s.Name, i)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return fmt.Errorf("renaming sheet %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, s, bold); err != nil {
			return fmt.Errorf("writing sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, s Sheet, bold int) error {
	if s.Result == nil {
		return f.SetSheetRow(name, "A1", &[]any{"Error", s.Error})
	}
	res := s.Result

	meta := [][]any{
		{"Structure of Duty for CTH", res.Meta.CTH},
		{"country of Origin", res.Meta.Country},
		{"assessable_value", res.Meta.AssessableValue},
		{"quantity", res.Meta.Quantity},
	}
	for i, row := range meta {
		if err := setRow(f, name, metaStartRow+i, row); err != nil {
			return err
		}
	}

	header := make([]any, len(duty.Columns))
	for i, c := range duty.Columns {
		header[i] = c
	}
	if err := setRow(f, name, headerRow, header); err != nil {
		return err
	}

	lines := append(append([]duty.LineItem(nil), res.Rows...), res.TotalRow)
	for i := range lines {
		if err := setRow(f, name, firstLineRow+i, lineValues(&lines[i])); err != nil {
			return err
		}
	}
	totalRow := firstLineRow + len(lines) - 1

	for _, row := range []int{headerRow, totalRow} {
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(len(duty.Columns), row)
		if err := f.SetCellStyle(name, start, end, bold); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(name, "A", "A", descColWidth); err != nil {
		return err
	}
	return f.SetColWidth(name, "B", "I", figureColWidth)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func lineValues(l *duty.LineItem) []any {
	return []any{
		l.Name,
		l.TariffRate,
		l.SpecDuty,
		l.Unit,
		l.NotificationLabel,
		l.EffectiveRate,
		l.EffectiveSpecDuty,
		l.EffectiveUnit,
		l.Amount,
	}
}

// sheetName keeps names within the XLSX length limit and never empty.
func sheetName(name string, idx int) string {
	name = SanitizeFilename(name)
	if name == "" {
		name = fmt.Sprintf("Sheet%d", idx+1)
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
