// Package statistics estimates the sampling error of Monte Carlo outcome
// frequencies.
package statistics

import (
	"fmt"
	"math"
)

// z95 is the two-sided 95% normal quantile
const z95 = 1.96

// Proportion counts how many of a run's trials produced one outcome
type Proportion struct {
	Hits   int
	Trials int
}

// Estimate returns the observed frequency in [0, 1]
func (p Proportion) Estimate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Trials)
}

// Variance returns the binomial variance of a single trial
func (p Proportion) Variance() float64 {
	q := p.Estimate()
	return q * (1 - q)
}

// StdError returns the standard error of the estimate
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	return math.Sqrt(p.Variance() / float64(p.Trials))
}

// Margin95 returns the half width of the normal 95% confidence interval
func (p Proportion) Margin95() float64 {
	return z95 * p.StdError()
}

// ConfidenceInterval95 returns the Wilson score 95% interval, which stays
// inside [0, 1] even when the estimate is 0 or 1.
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	if p.Trials == 0 {
		return 0, 1
	}
	n := float64(p.Trials)
	q := p.Estimate()
	z2 := z95 * z95

	denom := 1 + z2/n
	centre := (q + z2/(2*n)) / denom
	margin := z95 * math.Sqrt(q*(1-q)/n+z2/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// Validate checks that the counts describe a possible run
func (p Proportion) Validate() error {
	if p.Trials < 0 || p.Hits < 0 {
		return fmt.Errorf("negative counts: %d of %d", p.Hits, p.Trials)
	}
	if p.Hits > p.Trials {
		return fmt.Errorf("hits %d exceed trials %d", p.Hits, p.Trials)
	}
	return nil
}

// TrialsFor returns how many trials keep the 95% margin at or below margin
// for a frequency near q. The worst case is q = 0.5.
func TrialsFor(q, margin float64) int {
	if margin <= 0 {
		return 0
	}
	return int(math.Ceil(z95 * z95 * q * (1 - q) / (margin * margin)))
}
