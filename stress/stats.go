package stress

import (
	"math"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// summarize turns per-trial ns/op samples into Stats.  A single sample has
// zero spread.
func summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	s := Stats{
		MeanNs: stat.Mean(sorted, nil),
		P50Ns:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P99Ns:  stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDevNs = stat.StdDev(sorted, nil)
	}
	if math.IsNaN(s.StdDevNs) {
		s.StdDevNs = 0
	}
	return s
}
