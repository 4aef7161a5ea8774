package export

import (
	"context"
	"fmt"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	SheetName    = "Strompreise"
	defaultSheet = "Sheet1"
)

// Workbook writes data points to a single-sheet xlsx file, replacing any existing file.
type Workbook struct {
	path   string
	loc    *time.Location
	logger *zap.Logger
}

func NewWorkbook(path string, loc *time.Location) *Workbook {
	return &Workbook{
		path:   path,
		loc:    loc,
		logger: zap.L(),
	}
}

func (wb *Workbook) Path() string {
	return wb.path
}

// Write stores a header row followed by one row per point. Prices are kept as numeric cells.
func (wb *Workbook) Write(_ context.Context, points model.DataPoints) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 20); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "C", 25); err != nil {
		return err
	}

	header := make([]any, 0, len(model.Headers))
	for _, h := range model.Headers {
		header = append(header, h)
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, p := range points {
		row := []any{model.FormatTimestamp(p.Timestamp, wb.loc), p.MarketPrice, p.LocalPrice}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(wb.path); err != nil {
		return fmt.Errorf("save %s: %w", wb.path, err)
	}
	wb.logger.Info("wrote spreadsheet", zap.String("path", wb.path), zap.Int("rows", len(points)+1))
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}
