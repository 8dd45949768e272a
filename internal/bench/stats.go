package bench

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the per-round throughput samples of a run, in hands
// evaluated per second.
type Summary struct {
	Rounds int
	Mean   float64
	StdDev float64 // sample standard deviation
	Median float64
	Min    float64
	Max    float64
}

// Summarize computes throughput statistics over the given samples.
func Summarize(rates []float64) Summary {
	s := Summary{Rounds: len(rates)}
	if len(rates) == 0 {
		return s
	}

	sorted := slices.Clone(rates)
	slices.Sort(sorted)

	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	return s
}

// CoefficientOfVariation returns StdDev relative to Mean, or 0 when the mean is 0.
func (s Summary) CoefficientOfVariation() float64 {
	if s.Mean == 0 {
		return 0
	}
	return s.StdDev / s.Mean
}
