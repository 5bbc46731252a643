package utils

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   StatisticalSummary
	}{
		{
			"empty series",
			nil,
			StatisticalSummary{},
		},
		{
			"single reading",
			[]float64{21.5},
			StatisticalSummary{Count: 1, Mean: 21.5, Median: 21.5, Min: 21.5, Max: 21.5},
		},
		{
			"odd count",
			[]float64{3, 1, 2},
			StatisticalSummary{Count: 3, Mean: 2, Median: 2, Min: 1, Max: 3, StdDev: math.Sqrt(2.0 / 3.0)},
		},
		{
			"even count takes middle average",
			[]float64{10, 20, 30, 40},
			StatisticalSummary{Count: 4, Mean: 25, Median: 25, Min: 10, Max: 40, StdDev: math.Sqrt(125)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got.Count != tt.want.Count || got.Min != tt.want.Min || got.Max != tt.want.Max {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
			if !closeTo(got.Mean, tt.want.Mean) || !closeTo(got.Median, tt.want.Median) || !closeTo(got.StdDev, tt.want.StdDev) {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 3}
	Summarize(values)
	if values[0] != 5 || values[1] != 1 || values[2] != 3 {
		t.Errorf("input reordered: %v", values)
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
