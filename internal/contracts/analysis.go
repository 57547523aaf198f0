package contracts

// TickerResult holds the per-ticker statistics returned to clients.
// Correlation and SharpeRatio carry 0.0 when the statistic could not be
// computed (no data, no overlap with the benchmark, zero variance).
type TickerResult struct {
	Ticker      string    `json:"ticker"`
	Correlation float64   `json:"correlation"`
	SharpeRatio float64   `json:"sharpe_ratio"`
	Returns     []float64 `json:"returns"`
}

// AnalysisResult is the full payload for one analysis run
// ⭐ SSOT: the one wire shape shared by the API and the CLI
type AnalysisResult struct {
	StockData         []TickerResult `json:"stockData"`
	BenchmarkReturns  []float64      `json:"benchmarkReturns"`
	BenchmarkUsed     string         `json:"benchmarkUsed"`
	HighestCorrTicker string         `json:"highestCorrTicker"`
	LowestCorrTicker  string         `json:"lowestCorrTicker"`
}
