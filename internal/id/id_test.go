package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPredictionID(t *testing.T) {
	tests := []struct {
		kind  string
		month int
		want  string
	}{
		{"income", 1, "forecast-income-1"},
		{"expense", 6, "forecast-expense-6"},
		{"income", 12, "forecast-income-12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPredictionID(tt.kind, tt.month))
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-01", MonthKey(time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0999-12", MonthKey(time.Date(999, 12, 1, 0, 0, 0, 0, time.UTC)))
}
