package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/analysis"
	"github.com/anicoll/spotprice-report/internal/pkg/chart"
	"github.com/anicoll/spotprice-report/internal/pkg/config"
	"github.com/anicoll/spotprice-report/internal/pkg/contxt"
	"github.com/anicoll/spotprice-report/internal/pkg/corrently"
	"github.com/anicoll/spotprice-report/internal/pkg/export"
	"github.com/anicoll/spotprice-report/internal/pkg/publisher"
	"github.com/anicoll/spotprice-report/internal/pkg/report"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// ReportCommand is the main entry point for the spot price report CLI command.
// Flags override values loaded from the environment.
func ReportCommand(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(ctx, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	svc, err := newServices(cfg, loc, os.Stdout)
	if err != nil {
		return err
	}
	return run(ctx.Context, cfg, svc, os.Stdout, logger)
}

func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("zip") {
		cfg.ZipCode = ctx.String("zip")
	}
	if ctx.IsSet("base-url") {
		cfg.BaseURL = ctx.String("base-url")
	}
	if ctx.IsSet("output") {
		cfg.OutputFile = ctx.String("output")
	}
	if ctx.IsSet("chart") {
		cfg.ChartFile = ctx.String("chart")
	}
	if ctx.IsSet("timeout") {
		cfg.RequestTimeout = ctx.Duration("timeout")
	}
	if ctx.IsSet("timezone") {
		cfg.Timezone = ctx.String("timezone")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
}

// newLogger logs to stderr so stdout only carries the report.
func newLogger(level string) (*zap.Logger, error) {
	var err error
	logCfg := zap.NewProductionConfig()

	logCfg.Level, err = zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}
	logCfg.Sampling = nil
	return logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

type services struct {
	fetcher   Fetcher
	publisher Publisher
	chart     ChartRenderer
}

// newServices wires the production fetcher, the console and xlsx publishers, and the chart renderer.
func newServices(cfg *config.Config, loc *time.Location, out io.Writer) (services, error) {
	reg := publisher.New()
	if err := reg.RegisterPublisher("console", report.NewTable(out, loc)); err != nil {
		return services{}, err
	}
	if err := reg.RegisterPublisher("xlsx", export.NewWorkbook(cfg.OutputFile, loc)); err != nil {
		return services{}, err
	}

	return services{
		fetcher:   corrently.New(corrently.WithLocation(loc)),
		publisher: reg,
		chart:     chart.New(chart.WithLocation(loc)),
	}, nil
}

// run performs one fetch and report cycle. A failed fetch is reported on out and is not an error;
// decode, write and render failures are returned.
func run(ctx context.Context, cfg *config.Config, svc services, out io.Writer, logger *zap.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("zip", cfg.ZipCode))

	endpoint := corrently.MarketDataURL(cfg.BaseURL, cfg.ZipCode)
	fetchCtx, cancel := contxt.WithTimeout(ctx, cfg.RequestTimeout)
	res, err := svc.fetcher.Fetch(fetchCtx, endpoint)
	cancel()
	if err != nil {
		if errors.Is(err, corrently.ErrFetch) {
			logger.Warn("fetch failed, skipping report", zap.Error(err))
			return report.FetchFailed(out, res.Duration)
		}
		return fmt.Errorf("fetch market data: %w", err)
	}

	if err := svc.publisher.Publish(ctx, res.Points); err != nil {
		return err
	}

	if len(res.Points) == 0 {
		logger.Warn("no data points received")
		return report.NoData(out, res.Duration)
	}

	result, err := analysis.Analyze(res.Points)
	if err != nil {
		return err
	}
	if n := len(result.Negative); n > 0 {
		logger.Info("negative local prices in series", zap.Int("count", n))
	}

	if err := svc.chart.Render(ctx, cfg.ChartPath(), cfg.SeriesLabel(), result); err != nil {
		return err
	}
	return report.Summary(out, result.Min, result.Max, res.Duration, loc)
}
