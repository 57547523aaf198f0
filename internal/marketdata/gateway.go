// Package marketdata adapts the provider client into the fail-soft return
// source consumed by the analysis pipeline.
package marketdata

import (
	"context"
	"time"

	"github.com/wonny/argus/backend/internal/contracts"
	"github.com/wonny/argus/backend/internal/external/yahoo"
	"github.com/wonny/argus/backend/pkg/logger"
)

// ChartClient is the slice of the provider client the gateway consumes
type ChartClient interface {
	FetchLatest(ctx context.Context, symbol string) ([]contracts.Observation, error)
	FetchHistory(ctx context.Context, symbol string, from, to time.Time, interval yahoo.Interval) ([]contracts.Observation, error)
}

// Gateway converts provider price history into monthly return series.
// ⭐ SSOT: the fail-soft boundary — per-symbol provider faults never escape,
// they degrade to an empty series
type Gateway struct {
	client ChartClient
	logger *logger.Logger
}

// NewGateway creates a new market data gateway
func NewGateway(client ChartClient, log *logger.Logger) *Gateway {
	return &Gateway{
		client: client,
		logger: log.WithField("module", "marketdata"),
	}
}

// MonthlyReturns fetches monthly history for symbol over [from, to] and
// converts it to fractional returns. Any fault — a failed existence probe,
// a provider error, or a history too short to difference — yields an
// empty series.
func (g *Gateway) MonthlyReturns(ctx context.Context, symbol string, from, to time.Time) contracts.ReturnSeries {
	// Probe first so unknown tickers never issue windowed queries
	latest, err := g.client.FetchLatest(ctx, symbol)
	if err != nil {
		g.logger.WithError(err).WithField("symbol", symbol).Warn("Symbol probe failed")
		return contracts.ReturnSeries{}
	}
	if len(latest) == 0 {
		g.logger.WithField("symbol", symbol).Warn("Symbol probe returned no data")
		return contracts.ReturnSeries{}
	}

	prices, err := g.client.FetchHistory(ctx, symbol, from, to, yahoo.IntervalMonthly)
	if err != nil {
		g.logger.WithError(err).WithField("symbol", symbol).Warn("History fetch failed")
		return contracts.ReturnSeries{}
	}

	series := contracts.BuildReturns(prices)
	if series.IsEmpty() {
		g.logger.WithFields(map[string]interface{}{
			"symbol": symbol,
			"prices": len(prices),
		}).Warn("History too short to build returns")
		return series
	}

	g.logger.WithFields(map[string]interface{}{
		"symbol":  symbol,
		"returns": len(series),
	}).Debug("Monthly returns built")

	return series
}
