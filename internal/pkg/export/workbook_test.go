package export

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, path string) (*excelize.File, [][]string) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return f, rows
}

func rawFloat(t *testing.T, f *excelize.File, cell string) float64 {
	t.Helper()
	raw, err := f.GetCellValue(SheetName, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	v, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	return v
}

func TestWorkbook_Write(t *testing.T) {
	tests := map[string]struct {
		points model.DataPoints
	}{
		"scenario": {
			points: model.DataPoints{
				{Timestamp: time.UnixMilli(1700000000000), MarketPrice: 50.0, LocalPrice: -5.25},
				{Timestamp: time.UnixMilli(1700003600000), MarketPrice: 52.0, LocalPrice: 60.10},
			},
		},
		"unrounded values": {
			points: model.DataPoints{
				{Timestamp: time.UnixMilli(1700003600000), MarketPrice: 123.456789, LocalPrice: -0.001},
				{Timestamp: time.UnixMilli(1700000000000), MarketPrice: 0.1 + 0.2, LocalPrice: 1e-7},
				{Timestamp: time.UnixMilli(1700007200000), MarketPrice: 99999.99999, LocalPrice: 0},
			},
		},
		"empty": {
			points: model.DataPoints{},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "energy_prices.xlsx")
			require.NoError(t, NewWorkbook(path, time.UTC).Write(context.Background(), tt.points))

			f, rows := readRows(t, path)
			require.Len(t, rows, len(tt.points)+1)
			assert.Equal(t, model.Headers, rows[0])

			for i, p := range tt.points {
				row := i + 2
				assert.Equal(t, model.FormatTimestamp(p.Timestamp, time.UTC), rows[i+1][0])
				assert.Equal(t, p.MarketPrice, rawFloat(t, f, "B"+strconv.Itoa(row)))
				assert.Equal(t, p.LocalPrice, rawFloat(t, f, "C"+strconv.Itoa(row)))

				typ, err := f.GetCellType(SheetName, "B"+strconv.Itoa(row))
				require.NoError(t, err)
				assert.NotEqual(t, excelize.CellTypeSharedString, typ)
				assert.NotEqual(t, excelize.CellTypeInlineString, typ)
			}
		})
	}
}

func TestWorkbook_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy_prices.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	points := model.DataPoints{{Timestamp: time.UnixMilli(1700000000000), MarketPrice: 1, LocalPrice: 2}}
	wb := NewWorkbook(path, time.UTC)
	require.NoError(t, wb.Write(context.Background(), points))
	require.NoError(t, wb.Write(context.Background(), points))

	_, rows := readRows(t, path)
	assert.Len(t, rows, 2)
	assert.Equal(t, path, wb.Path())
}

func TestWorkbook_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "energy_prices.xlsx")
	err := NewWorkbook(path, time.UTC).Write(context.Background(), model.DataPoints{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
