// Package statistics accumulates summary statistics over simulation samples.
package statistics

import (
	"math"
	"slices"
)

// Sample accumulates values and reports their distribution.
type Sample struct {
	n      int
	sum    float64
	sum2   float64
	values []float64
}

// Add records one value.
func (s *Sample) Add(v float64) {
	s.n++
	s.sum += v
	s.sum2 += v * v
	s.values = append(s.values, v)
}

// Merge adds every value recorded in other.
func (s *Sample) Merge(other *Sample) {
	for _, v := range other.values {
		s.Add(v)
	}
}

// Count returns the number of values.
func (s *Sample) Count() int {
	return s.n
}

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

// Variance returns the sample variance.
func (s *Sample) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.sum2 - float64(s.n)*mean*mean) / float64(s.n-1)
}

// StdDev returns the sample standard deviation.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(max(s.Variance(), 0))
}

// StdError returns the standard error of the mean.
func (s *Sample) StdError() float64 {
	if s.n == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.n))
}

// ConfidenceInterval95 returns the normal-approximation 95% interval for the
// mean.
func (s *Sample) ConfidenceInterval95() (low, high float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the middle value.
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the p-th quantile (0..1) using linear interpolation.
func (s *Sample) Percentile(p float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Summary is a JSON-friendly digest of a Sample.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CILow  float64 `json:"ci95_low"`
	CIHigh float64 `json:"ci95_high"`
	Median float64 `json:"median"`
}

// Summary digests the sample.
func (s *Sample) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Count:  s.n,
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		CILow:  low,
		CIHigh: high,
		Median: s.Median(),
	}
}
