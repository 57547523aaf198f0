// Package stats computes the per-ticker statistics of the analysis
// pipeline. Results are null.Float so callers can tell a genuine 0.0 from
// a statistic that could not be computed; the wire layer flattens invalid
// values to 0.0.
package stats

import (
	"math"

	"github.com/guregu/null/v5"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/argus/backend/internal/contracts"
)

const (
	// DefaultRiskFreeRate is the annual risk-free rate used for excess returns
	DefaultRiskFreeRate = 0.02

	// monthsPerYear annualizes monthly statistics
	monthsPerYear = 12
)

// Correlation returns the Pearson correlation of an aligned return pair.
// Invalid when the pair is empty or either side has zero variance.
func Correlation(pair contracts.AlignedPair) null.Float {
	if pair.IsEmpty() {
		return null.Float{}
	}

	r := stat.Correlation(pair.A, pair.B, nil)
	if math.IsNaN(r) {
		return null.Float{}
	}

	return null.FloatFrom(r)
}

// SharpeRatio returns the annualized Sharpe ratio of a monthly return
// series: sqrt(12) * mean(excess) / stddev(excess), with excess returns
// against riskFreeRate/12 and the sample (n-1) standard deviation.
// Invalid when the series is empty or the excess returns have zero
// variance.
func SharpeRatio(returns []float64, riskFreeRate float64) null.Float {
	if len(returns) == 0 {
		return null.Float{}
	}

	monthlyRate := riskFreeRate / monthsPerYear
	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - monthlyRate
	}

	stdDev := stat.StdDev(excess, nil)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return null.Float{}
	}

	sharpe := math.Sqrt(monthsPerYear) * stat.Mean(excess, nil) / stdDev
	if math.IsNaN(sharpe) || math.IsInf(sharpe, 0) {
		return null.Float{}
	}

	return null.FloatFrom(sharpe)
}
