package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"customsduty/internal/duty"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// csvColumns prefixes the duty table columns with the code and country so
// several computations can share one file.
var csvColumns = append([]string{"Structure of Duty for CTH", "country of Origin"}, duty.Columns...)

// CSVWriter wraps csv.Writer for exporting duty tables.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes CSV to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(csvColumns)
}

// WriteSheet writes the line items and totals row of one computation. A sheet
// without a result is written as a single row carrying its error.
func (w *CSVWriter) WriteSheet(s Sheet) error {
	if s.Result == nil {
		row := make([]string, len(csvColumns))
		row[0] = s.Name
		row[2] = "error: " + s.Error
		return w.csv.Write(row)
	}

	res := s.Result
	for _, l := range append(append([]duty.LineItem(nil), res.Rows...), res.TotalRow) {
		if err := w.csv.Write(lineToRow(res.Meta, &l)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// WriteCSV writes the BOM, header and every sheet to out.
func WriteCSV(out io.Writer, sheets []Sheet) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	w := NewCSVWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, s := range sheets {
		if err := w.WriteSheet(s); err != nil {
			return fmt.Errorf("writing %s: %w", s.Name, err)
		}
	}
	w.Flush()
	return w.Error()
}

func lineToRow(meta duty.Meta, l *duty.LineItem) []string {
	return []string{
		meta.CTH,
		meta.Country,
		l.Name,
		formatRate(l.TariffRate),
		l.SpecDuty,
		l.Unit,
		l.NotificationLabel,
		formatRate(l.EffectiveRate),
		l.EffectiveSpecDuty,
		l.EffectiveUnit,
		formatMoney(l.Amount),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: duty_{codes}_{YYYY-MM-DD}.{ext}
func BuildFilename(codes []string, ext string) string {
	name := SanitizeFilename("duty_" + strings.Join(codes, "_"))
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", name, date, ext)
}
