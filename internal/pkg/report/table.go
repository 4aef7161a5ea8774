package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
)

const rowFormat = "%-20s %-25s %-25s\n"

// Table prints data points as an aligned text table in the order given.
type Table struct {
	w   io.Writer
	loc *time.Location
}

func NewTable(w io.Writer, loc *time.Location) *Table {
	return &Table{w: w, loc: loc}
}

// Write prints one header line and one row per point.
func (t *Table) Write(_ context.Context, points model.DataPoints) error {
	bw := bufio.NewWriter(t.w)
	fmt.Fprintf(bw, rowFormat, model.Headers[0], model.Headers[1], model.Headers[2])
	for _, p := range points {
		fmt.Fprintf(bw, "%-20s %-25.2f %-25.2f\n",
			model.FormatTimestamp(p.Timestamp, t.loc), p.MarketPrice, p.LocalPrice)
	}
	return bw.Flush()
}
