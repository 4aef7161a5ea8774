package chart

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/analysis"
	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	title       = "Strompreise"
	xLabel      = "Zeit"
	minLabel    = "Niedrigster Preis"
	maxLabel    = "Höchster Preis"
	negLabel    = "Negativer Preis"
	legendSize  = 6
	tickSize    = 8
	markerRange = 3
)

var (
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	minColor  = color.RGBA{G: 128, A: 255}
	maxColor  = color.RGBA{R: 255, A: 255}
	negColor  = color.RGBA{R: 255, G: 127, A: 255}
)

// Renderer draws a local price series to an image file. The format follows the file extension.
type Renderer struct {
	width  vg.Length
	height vg.Length
	loc    *time.Location
	logger *zap.Logger
}

type Option func(*Renderer)

func WithSize(w, h vg.Length) Option {
	return func(r *Renderer) {
		r.width = w
		r.height = h
	}
}

// WithLocation sets the zone tick labels are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		r.loc = loc
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  8 * vg.Inch,
		height: 5 * vg.Inch,
		loc:    time.Local,
		logger: zap.L(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Plot builds the annotated chart for an analysed series.
func (r *Renderer) Plot(label string, res analysis.Result) (*plot.Plot, error) {
	if len(res.Sorted) == 0 {
		return nil, analysis.ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = fmt.Sprintf("Preis (%s)", model.PriceUnit)

	p.X.Tick.Marker = plot.TimeTicks{
		Format: model.ChartTickLayout,
		Time:   plot.UnixTimeIn(r.loc),
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.Font.Size = vg.Points(tickSize)
	p.Y.Tick.Label.Font.Size = vg.Points(tickSize)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(series(res.Sorted))
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	p.Add(line)
	p.Legend.Add(label, line)

	if len(res.Negative) > 0 {
		negatives := make(model.DataPoints, 0, len(res.Negative))
		for _, i := range res.Negative {
			negatives = append(negatives, res.Sorted[i])
		}
		neg, err := marker(negatives, negColor, draw.TriangleGlyph{}, markerRange-1)
		if err != nil {
			return nil, err
		}
		p.Add(neg)
		p.Legend.Add(negLabel, neg)
	}

	for _, m := range []struct {
		e     model.Extremum
		label string
		c     color.Color
	}{
		{res.Min, minLabel, minColor},
		{res.Max, maxLabel, maxColor},
	} {
		point := model.DataPoints{{Timestamp: m.e.Timestamp, LocalPrice: m.e.Price}}
		s, err := marker(point, m.c, draw.CircleGlyph{}, markerRange)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add(m.label, s)
	}

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(legendSize)
	return p, nil
}

// Render plots the series and saves it to path.
func (r *Renderer) Render(_ context.Context, path, label string, res analysis.Result) error {
	p, err := r.Plot(label, res)
	if err != nil {
		return err
	}
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	r.logger.Info("wrote chart", zap.String("path", path), zap.Int("points", len(res.Sorted)))
	return nil
}

func series(points model.DataPoints) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = unixSeconds(pt.Timestamp)
		xys[i].Y = pt.LocalPrice
	}
	return xys
}

func marker(points model.DataPoints, c color.Color, shape draw.GlyphDrawer, radius float64) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(series(points))
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Radius = vg.Points(radius)
	return s, nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}
