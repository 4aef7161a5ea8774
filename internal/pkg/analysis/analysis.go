package analysis

import (
	"errors"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
	"github.com/samber/lo"
)

var ErrEmptySeries = errors.New("cannot analyse an empty price series")

// Result holds the chronologically ordered series and its local price extrema.
type Result struct {
	Sorted   model.DataPoints
	Min      model.Extremum
	Max      model.Extremum
	Negative []int // indices into Sorted with a local price below zero.
}

// Analyze sorts points by timestamp and finds the lowest and highest local price.
// Ties resolve to the earliest point in chronological order.
func Analyze(points model.DataPoints) (Result, error) {
	if len(points) == 0 {
		return Result{}, ErrEmptySeries
	}
	sorted := points.Sorted()

	lowest := lo.MinBy(sorted, func(a, b model.DataPoint) bool {
		return a.LocalPrice < b.LocalPrice
	})
	highest := lo.MaxBy(sorted, func(a, b model.DataPoint) bool {
		return a.LocalPrice > b.LocalPrice
	})

	return Result{
		Sorted:   sorted,
		Min:      model.Extremum{Timestamp: lowest.Timestamp, Price: lowest.LocalPrice, Kind: model.Minimum},
		Max:      model.Extremum{Timestamp: highest.Timestamp, Price: highest.LocalPrice, Kind: model.Maximum},
		Negative: Negative(sorted),
	}, nil
}

// Negative returns the indices of points whose local price is below zero.
func Negative(points model.DataPoints) []int {
	idx := []int{}
	for i, p := range points {
		if p.LocalPrice < 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
