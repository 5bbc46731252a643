package utils

import (
	"math"
	"sort"
)

// StatisticalSummary describes one metric series.
type StatisticalSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics over a series. An empty
// series yields a zeroed summary rather than an error.
func Summarize(values []float64) *StatisticalSummary {
	s := &StatisticalSummary{Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Median = median(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(values)))

	return s
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
