package cmd

import (
	"context"
	"errors"

	"github.com/anicoll/spotprice-report/internal/pkg/analysis"
	"github.com/anicoll/spotprice-report/internal/pkg/model"
)

// MockFetcher is a mock implementation of the Fetcher interface.
type MockFetcher struct {
	FetchFunc func(ctx context.Context, endpoint string) (model.FetchResult, error)
	Calls     []string
}

func (m *MockFetcher) Fetch(ctx context.Context, endpoint string) (model.FetchResult, error) {
	m.Calls = append(m.Calls, endpoint)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, endpoint)
	}
	return model.FetchResult{}, errors.New("mocked Fetch not implemented")
}

// MockPublisher is a mock implementation of the Publisher interface.
type MockPublisher struct {
	PublishFunc func(ctx context.Context, points model.DataPoints) error
	Published   []model.DataPoints
}

func (m *MockPublisher) Publish(ctx context.Context, points model.DataPoints) error {
	m.Published = append(m.Published, points)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, points)
	}
	return nil
}

// MockChartRenderer is a mock implementation of the ChartRenderer interface.
type MockChartRenderer struct {
	RenderFunc func(ctx context.Context, path, label string, res analysis.Result) error
	Rendered   []analysis.Result
}

func (m *MockChartRenderer) Render(ctx context.Context, path, label string, res analysis.Result) error {
	m.Rendered = append(m.Rendered, res)
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, path, label, res)
	}
	return nil
}
