package model

import (
	"slices"
	"time"
)

// DataPoint is one market-data interval as returned by the provider.
type DataPoint struct {
	Timestamp   time.Time
	MarketPrice float64 // Eur/MWh
	LocalPrice  float64 // Eur/MWh, specific to the queried zip.
}

type DataPoints []DataPoint

// Sorted returns a copy ordered by timestamp. Points sharing a timestamp keep their response order.
func (dp DataPoints) Sorted() DataPoints {
	sorted := slices.Clone(dp)
	slices.SortStableFunc(sorted, func(a, b DataPoint) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return sorted
}

// LocalPrices returns the local prices in sequence order.
func (dp DataPoints) LocalPrices() []float64 {
	prices := make([]float64, 0, len(dp))
	for _, p := range dp {
		prices = append(prices, p.LocalPrice)
	}
	return prices
}

type FetchResult struct {
	Points   DataPoints
	Duration time.Duration
}

// DurationMillis reports the request duration in fractional milliseconds.
func (r FetchResult) DurationMillis() float64 {
	return float64(r.Duration) / float64(time.Millisecond)
}

type Extremum struct {
	Timestamp time.Time
	Price     float64
	Kind      ExtremumKind
}
