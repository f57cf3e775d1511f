package growth

import (
	"errors"
	"math"
	"time"
)

// Direction classifies a percentage change for display.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	return [...]string{"flat", "up", "down"}[d]
}

var ErrInsufficientData = errors.New("not enough non-zero data points")

// Record is a single spreadsheet row. A zero Timestamp marks a missing or unparseable
// date-time and Valid is false if the Total column was missing or malformed.
type Record struct {
	Timestamp time.Time
	Total     float64
	Valid     bool
}

type Result struct {
	First           float64
	Latest          float64
	FirstTimestamp  time.Time
	LatestTimestamp time.Time
	PercentChange   float64
	DaysElapsed     float64
	AvgDailyGrowth  float64
	AvgYearlyGrowth float64
	Dated           bool
	Points          int
}

func (r Result) Direction() Direction {
	switch {
	case r.PercentChange > 0:
		return Up
	case r.PercentChange < 0:
		return Down
	default:
		return Flat
	}
}

// Filter returns the records with a valid, non-zero Total in their original order.
func Filter(records []Record) []Record {
	filtered := []Record{}
	for _, r := range records {
		if r.Valid && r.Total != 0 {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// Compute calculates the growth between the first and last non-zero records. The
// percentage change is taken relative to the magnitude of the first value so that a
// negative baseline moving towards zero reads as growth.
func Compute(records []Record) (*Result, error) {
	filtered := Filter(records)
	if len(filtered) < 2 {
		return nil, ErrInsufficientData
	}

	first := filtered[0]
	latest := filtered[len(filtered)-1]

	result := Result{
		First:           first.Total,
		Latest:          latest.Total,
		FirstTimestamp:  first.Timestamp,
		LatestTimestamp: latest.Timestamp,
		PercentChange:   (latest.Total - first.Total) / math.Abs(first.Total) * 100,
		Points:          len(filtered),
	}

	if !first.Timestamp.IsZero() && !latest.Timestamp.IsZero() {
		result.Dated = true
		result.DaysElapsed = latest.Timestamp.Sub(first.Timestamp).Seconds() / 86400

		if result.DaysElapsed > 0 {
			result.AvgDailyGrowth = result.PercentChange / result.DaysElapsed
		}

		result.AvgYearlyGrowth = result.AvgDailyGrowth * 365
	}

	return &result, nil
}
