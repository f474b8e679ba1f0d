// Package trend fits a least-squares line through an ordered amount series
// and classifies its direction.
package trend

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/model"
)

// Point is one observation in a dated series.
type Point struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Estimate sorts points by date, re-indexes them as x = 0..n-1 with
// y = |amount|, and fits an ordinary least-squares line. Fewer than two
// points yield a stable zero-slope trend.
//
// The caller is responsible for windowing and for restricting the series to
// a single transaction type.
func Estimate(points []Point) model.Trend {
	if len(points) < 2 {
		return model.StableTrend
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		ys[i] = p.Amount.Abs().InexactFloat64()
	}

	slope := Slope(ys)
	return model.Trend{Slope: slope, Direction: DirectionOf(slope)}
}

// FromTransactions estimates the trend of txns' dates and amounts.
func FromTransactions(txns []model.Transaction) model.Trend {
	points := make([]Point, len(txns))
	for i, t := range txns {
		points[i] = Point{Date: t.Date, Amount: t.Amount}
	}
	return Estimate(points)
}

// Slope computes the OLS slope of ys against x = 0, 1, 2, ...
// It returns 0 when the fit is undefined.
func Slope(ys []float64) float64 {
	n := float64(len(ys))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// DirectionOf maps a slope sign to a Direction.
func DirectionOf(slope float64) model.Direction {
	switch {
	case slope > 0:
		return model.DirectionIncreasing
	case slope < 0:
		return model.DirectionDecreasing
	default:
		return model.DirectionStable
	}
}
