package model

// Direction is the sign of a fitted trend line.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

// Trend is the result of a least-squares fit over an ordered series.
type Trend struct {
	Slope     float64   `json:"slope"`
	Direction Direction `json:"direction"`
}

// StableTrend is returned when there is not enough data to fit a line.
var StableTrend = Trend{Slope: 0, Direction: DirectionStable}
