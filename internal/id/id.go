package id

import (
	"fmt"
	"time"
)

const predictionPrefix = "forecast"

// FormatPredictionID returns an ID like "forecast-income-3".
func FormatPredictionID(kind string, month int) string {
	return fmt.Sprintf("%s-%s-%d", predictionPrefix, kind, month)
}

// MonthKey returns the "YYYY-MM" key for t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
