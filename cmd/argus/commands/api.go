package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/argus/backend/internal/analysis"
	"github.com/wonny/argus/backend/internal/api"
	"github.com/wonny/argus/backend/internal/api/handlers"
	"github.com/wonny/argus/backend/internal/external/yahoo"
	"github.com/wonny/argus/backend/internal/marketdata"
	"github.com/wonny/argus/backend/pkg/config"
	"github.com/wonny/argus/backend/pkg/httputil"
	"github.com/wonny/argus/backend/pkg/logger"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

This command:
- Starts the HTTP API server
- Serves the stock analysis endpoint

Endpoints:
  GET  /health           - Health check
  POST /api/stock-data   - Correlation and Sharpe analysis for a list of tickers

Example:
  go run ./cmd/argus api
  go run ./cmd/argus api --port 5000`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Argus API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Create HTTP client
	httpClient := httputil.New(cfg, log)

	// 4. Create market data client
	yahooClient := yahoo.NewClient(httpClient, log).WithBaseURL(cfg.Yahoo.BaseURL)

	// 5. Create market data gateway
	gateway := marketdata.NewGateway(yahooClient, log)

	// 6. Create benchmark selector and analyzer
	selector := analysis.NewBenchmarkSelector(gateway, cfg.Analysis.Benchmarks, log)
	analyzer := analysis.NewAnalyzer(gateway, selector, cfg.Analysis, log)

	// 7. Create handler
	analysisHandler := handlers.NewAnalysisHandler(analyzer, log)

	// 8. Create router
	router := api.NewRouter(analysisHandler, log)

	// 9. Create server
	server := api.New(cfg, log, router)

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/stock-data")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
