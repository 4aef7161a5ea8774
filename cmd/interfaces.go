package cmd

import (
	"context"

	"github.com/anicoll/spotprice-report/internal/pkg/analysis"
	"github.com/anicoll/spotprice-report/internal/pkg/model"
)

// Fetcher retrieves one market data series from a fully formed endpoint URL.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (model.FetchResult, error)
}

// Publisher renders the raw, response-ordered series (console table, spreadsheet).
type Publisher interface {
	Publish(ctx context.Context, points model.DataPoints) error
}

// ChartRenderer draws an analysed series to path.
type ChartRenderer interface {
	Render(ctx context.Context, path, label string, res analysis.Result) error
}
