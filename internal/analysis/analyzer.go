// Package analysis runs the correlation and Sharpe pipeline for a set of
// tickers against a benchmark index.
package analysis

import (
	"context"
	"sort"
	"time"

	"github.com/wonny/argus/backend/internal/contracts"
	"github.com/wonny/argus/backend/internal/stats"
	"github.com/wonny/argus/backend/pkg/config"
	"github.com/wonny/argus/backend/pkg/logger"
)

// Analyzer coordinates one analysis run: window resolution, benchmark
// selection, the sequential per-ticker fetch/compute loop, and the
// correlation summary.
// ⭐ SSOT: pipeline sequencing lives only here
type Analyzer struct {
	source   contracts.ReturnSource
	selector *BenchmarkSelector
	logger   *logger.Logger

	windowDays   int
	riskFreeRate float64
	now          func() time.Time
}

// NewAnalyzer creates an analyzer from the pipeline configuration
func NewAnalyzer(source contracts.ReturnSource, selector *BenchmarkSelector, cfg config.AnalysisConfig, log *logger.Logger) *Analyzer {
	return &Analyzer{
		source:       source,
		selector:     selector,
		logger:       log.WithField("module", "analysis"),
		windowDays:   cfg.WindowDays,
		riskFreeRate: cfg.RiskFreeRate,
		now:          time.Now,
	}
}

// WithClock overrides the time source, mainly for tests
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze runs the full pipeline for the given tickers. Per-ticker faults
// degrade to 0.0 sentinels with empty returns; only benchmark exhaustion
// aborts the run.
func (a *Analyzer) Analyze(ctx context.Context, tickers []string) (*contracts.AnalysisResult, error) {
	startTime := time.Now()

	// 1. Resolve the trailing window once per run
	to := a.now()
	from := to.AddDate(0, 0, -a.windowDays)

	a.logger.WithFields(map[string]interface{}{
		"tickers": len(tickers),
		"from":    from.Format("2006-01-02"),
		"to":      to.Format("2006-01-02"),
	}).Info("Starting analysis run")

	// 2. Select the benchmark; every ticker is measured against it
	benchmark, benchmarkUsed, err := a.selector.Select(ctx, from, to)
	if err != nil {
		return nil, err
	}

	// 3. Per-ticker statistics, sequentially, preserving request order
	stockData := make([]contracts.TickerResult, 0, len(tickers))
	correlations := make([]tickerCorrelation, 0, len(tickers))

	for _, ticker := range tickers {
		returns := a.source.MonthlyReturns(ctx, ticker, from, to)

		// Correlation works on the dates shared with the benchmark;
		// Sharpe uses the ticker's full raw series
		corr := stats.Correlation(contracts.Align(returns, benchmark))
		sharpe := stats.SharpeRatio(returns.Values(), a.riskFreeRate)

		if !corr.Valid || !sharpe.Valid {
			a.logger.WithFields(map[string]interface{}{
				"ticker":       ticker,
				"returns":      len(returns),
				"corr_valid":   corr.Valid,
				"sharpe_valid": sharpe.Valid,
			}).Debug("Statistics degraded to sentinel")
		}

		stockData = append(stockData, contracts.TickerResult{
			Ticker:      ticker,
			Correlation: corr.ValueOrZero(),
			SharpeRatio: sharpe.ValueOrZero(),
			Returns:     returns.Values(),
		})
		correlations = append(correlations, tickerCorrelation{
			ticker: ticker,
			value:  corr.ValueOrZero(),
		})
	}

	// 4. Correlation summary
	highest, lowest := summarize(correlations, tickers)

	result := &contracts.AnalysisResult{
		StockData:         stockData,
		BenchmarkReturns:  benchmark.Values(),
		BenchmarkUsed:     benchmarkUsed,
		HighestCorrTicker: highest,
		LowestCorrTicker:  lowest,
	}

	a.logger.WithFields(map[string]interface{}{
		"tickers":   len(tickers),
		"benchmark": benchmarkUsed,
		"highest":   highest,
		"lowest":    lowest,
		"duration":  time.Since(startTime).Seconds(),
	}).Info("Analysis run completed")

	return result, nil
}

// tickerCorrelation pairs a ticker with its wire correlation for ranking
type tickerCorrelation struct {
	ticker string
	value  float64
}

// summarize picks the lowest- and highest-correlated tickers. The sort is
// ascending by the wire correlation values, so sentinel 0.0 entries rank
// among the genuine ones; ties resolve by sort order. No entries at all
// falls back to the first requested ticker, or "" for an empty request.
func summarize(correlations []tickerCorrelation, tickers []string) (highest, lowest string) {
	fallback := ""
	if len(tickers) > 0 {
		fallback = tickers[0]
	}

	if len(correlations) == 0 {
		return fallback, fallback
	}

	sort.Slice(correlations, func(i, j int) bool {
		return correlations[i].value < correlations[j].value
	})

	return correlations[len(correlations)-1].ticker, correlations[0].ticker
}
