package corrently

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"go.uber.org/zap"
)

const marketDataPath = "/v2.0/gsi/marketdata"

var (
	// ErrFetch covers every failure to obtain a response body: transport errors and non-2xx statuses.
	ErrFetch = errors.New("market data fetch failed")
	// ErrDecode is returned when a body was received but does not hold the expected payload.
	ErrDecode = errors.New("market data decode failed")
)

// FetchError carries the status of a non-2xx response.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", ErrFetch, e.Status)
}

func (e *FetchError) Unwrap() error {
	return ErrFetch
}

type client struct {
	httpClient *http.Client
	logger     *zap.Logger
	loc        *time.Location
}

type Option func(*client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

// WithLocation sets the zone decoded timestamps are expressed in.
func WithLocation(loc *time.Location) Option {
	return func(cl *client) {
		cl.loc = loc
	}
}

func New(opts ...Option) *client {
	c := &client{
		httpClient: &http.Client{},
		logger:     zap.L(),
		loc:        time.Now().Location(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// MarketDataURL builds the market data endpoint for zip on baseURL.
func MarketDataURL(baseURL, zip string) string {
	return strings.TrimRight(baseURL, "/") + marketDataPath + "?zip=" + url.QueryEscape(zip)
}

// Fetch performs a single GET against endpoint and decodes the data array.
// The elapsed time is set on the result whether or not the fetch succeeded.
func (c *client) Fetch(ctx context.Context, endpoint string) (model.FetchResult, error) {
	res := model.FetchResult{}
	c.logger.Debug("requesting market data", zap.String("url", endpoint))

	start := time.Now()
	body, err := c.get(ctx, endpoint)
	res.Duration = time.Since(start)
	if err != nil {
		c.logger.Warn("market data request failed", zap.Error(err), zap.Float64("duration_ms", res.DurationMillis()))
		return res, err
	}

	points, err := decode(body, c.loc)
	if err != nil {
		return res, err
	}
	res.Points = points

	c.logger.Info("received market data",
		zap.Int("count", len(points)),
		zap.Float64("duration_ms", res.DurationMillis()),
	)
	return res, nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("market data response", zap.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	return body, nil
}

type payload struct {
	Data *[]json.RawMessage `json:"data"`
}

// fields are pointers so absent keys can be told apart from zero values.
type rawDataPoint struct {
	StartTimestamp *int64   `json:"start_timestamp"`
	MarketPrice    *float64 `json:"marketprice"`
	LocalPrice     *float64 `json:"localprice"`
}

func decode(body []byte, loc *time.Location) (model.DataPoints, error) {
	p := payload{}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if p.Data == nil {
		return nil, fmt.Errorf("%w: missing data array", ErrDecode)
	}

	points := make(model.DataPoints, 0, len(*p.Data))
	for i, raw := range *p.Data {
		dp := rawDataPoint{}
		if err := json.Unmarshal(raw, &dp); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return nil, fmt.Errorf("%w: data[%d].%s: expected %s, got %s", ErrDecode, i, typeErr.Field, typeErr.Type, typeErr.Value)
			}
			return nil, fmt.Errorf("%w: data[%d]: %w", ErrDecode, i, err)
		}
		switch {
		case dp.StartTimestamp == nil:
			return nil, fmt.Errorf("%w: data[%d]: missing start_timestamp", ErrDecode, i)
		case dp.MarketPrice == nil:
			return nil, fmt.Errorf("%w: data[%d]: missing marketprice", ErrDecode, i)
		case dp.LocalPrice == nil:
			return nil, fmt.Errorf("%w: data[%d]: missing localprice", ErrDecode, i)
		}
		points = append(points, model.DataPoint{
			Timestamp:   time.UnixMilli(*dp.StartTimestamp).In(loc),
			MarketPrice: *dp.MarketPrice,
			LocalPrice:  *dp.LocalPrice,
		})
	}
	return points, nil
}
