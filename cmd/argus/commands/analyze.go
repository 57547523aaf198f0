package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/argus/backend/internal/analysis"
	"github.com/wonny/argus/backend/internal/external/yahoo"
	"github.com/wonny/argus/backend/internal/marketdata"
	"github.com/wonny/argus/backend/pkg/config"
	"github.com/wonny/argus/backend/pkg/httputil"
	"github.com/wonny/argus/backend/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze TICKER [TICKER...]",
	Short: "Run a one-shot analysis from the command line",
	Long: `Runs the correlation and Sharpe analysis once and prints the result as JSON.

Useful for spot checks without starting the API server.

Example:
  go run ./cmd/argus analyze AAPL
  go run ./cmd/argus analyze AAPL MSFT GOOG`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Create market data pipeline
	httpClient := httputil.New(cfg, log)
	yahooClient := yahoo.NewClient(httpClient, log).WithBaseURL(cfg.Yahoo.BaseURL)
	gateway := marketdata.NewGateway(yahooClient, log)

	// 4. Create analyzer
	selector := analysis.NewBenchmarkSelector(gateway, cfg.Analysis.Benchmarks, log)
	analyzer := analysis.NewAnalyzer(gateway, selector, cfg.Analysis, log)

	// 5. Run analysis
	result, err := analyzer.Analyze(context.Background(), args)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	// 6. Print result
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
