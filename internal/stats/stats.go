// Package stats holds the small set of descriptive statistics shared by the
// forecast and goal planning code. All functions treat an empty input as
// having a zero result rather than NaN.
package stats

import (
	"math"

	"github.com/shopspring/decimal"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the population variance of xs.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// CoefficientOfVariation returns StdDev/Mean. A non-positive mean yields 0.
func CoefficientOfVariation(xs []float64) float64 {
	m := Mean(xs)
	if m <= 0 {
		return 0
	}
	return StdDev(xs) / m
}

// Floats converts decimals to float64 for ratio math.
func Floats(ds []decimal.Decimal) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.InexactFloat64()
	}
	return out
}

// Sum returns the exact decimal sum of ds.
func Sum(ds []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}

// MeanDecimal returns the decimal mean of ds, or zero for an empty slice.
func MeanDecimal(ds []decimal.Decimal) decimal.Decimal {
	if len(ds) == 0 {
		return decimal.Zero
	}
	return Sum(ds).Div(decimal.NewFromInt(int64(len(ds))))
}

// MinMax returns the smallest and largest of ds. Both are zero for an empty slice.
func MinMax(ds []decimal.Decimal) (lo, hi decimal.Decimal) {
	if len(ds) == 0 {
		return decimal.Zero, decimal.Zero
	}
	return decimal.Min(ds[0], ds[1:]...), decimal.Max(ds[0], ds[1:]...)
}

// PositiveShare returns the percentage of ds that are strictly positive.
func PositiveShare(ds []decimal.Decimal) float64 {
	if len(ds) == 0 {
		return 0
	}
	n := 0
	for _, d := range ds {
		if d.IsPositive() {
			n++
		}
	}
	return float64(n) / float64(len(ds)) * 100
}
