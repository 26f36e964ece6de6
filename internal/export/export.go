// Package export renders an aggregated track table to a delimited text file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/TJ-5/GEMA/internal/aggregate"
	"github.com/TJ-5/GEMA/internal/duration"
	"github.com/TJ-5/GEMA/internal/model"
)

// Write renders rows to a semicolon-delimited file at dest, overwriting
// any existing file. The header line carries the configured column names
// verbatim; each data row projects the aggregated track onto those
// columns. Column names are matched case-insensitively against the fixed
// semantic set {Index, Titel, Künstler, Labelcode, Dauer}; a name outside
// that set yields an empty field for every row without failing the export.
func Write(dest string, rows []aggregate.Row, columns []string) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(columns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		if err := w.Write(Cells(row, columns)); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// Cells projects one aggregated track onto the configured columns, in
// order. The same projection backs both the file export and on-screen
// previews.
func Cells(row aggregate.Row, columns []string) []string {
	record := make([]string, len(columns))
	for i, name := range columns {
		record[i] = fieldValue(name, row.Key, row.TotalSeconds)
	}
	return record
}

// fieldValue projects one column of one aggregated track. Durations pass
// through the duration codec; unknown column names project to "".
func fieldValue(column string, key model.TrackKey, totalSeconds float64) string {
	switch strings.ToLower(column) {
	case "index":
		return key.Index
	case "titel":
		return key.Title
	case "künstler":
		return key.Artist
	case "labelcode":
		return key.LabelCode
	case "dauer":
		return duration.Format(totalSeconds)
	default:
		return ""
	}
}
