package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/timelog-reporter/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// Writer stores a report table as .xlsx or CSV depending on the destination
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write does nothing when the table has no rows or destination is empty.
func (w *Writer) Write(ctx context.Context, t domain.Table, destination string) error {
	logger := zerolog.Ctx(ctx)

	if destination == "" || t.IsEmpty() {
		logger.Debug().
			Str("destination", destination).
			Int("rows", t.Len()).
			Msg("nothing to write")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var err error
	switch strings.ToLower(filepath.Ext(destination)) {
	case ".xlsx":
		err = writeXLSX(t, destination)
	default:
		err = writeCSV(t, destination)
	}
	if err != nil {
		return err
	}

	logger.Info().
		Str("destination", destination).
		Int("rows", t.Len()).
		Msg("report written")
	return nil
}

func writeCSV(t domain.Table, destination string) error {
	file, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range formatRows(t) {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeXLSX(t domain.Table, destination string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, 0, len(t.Columns))
	for _, column := range t.Columns {
		header = append(header, column)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]any, 0, len(t.Columns))
		for _, column := range t.Columns {
			v := row[column]
			if domain.IsNull(v) {
				v = nil
			}
			values = append(values, v)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := f.SaveAs(destination); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
