package yahoo

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/wonny/argus/backend/internal/contracts"
)

// FetchHistory fetches price bars for [from, to] at the given interval
// ⭐ SSOT: windowed history requests are built only here
func (c *Client) FetchHistory(ctx context.Context, symbol string, from, to time.Time, interval Interval) ([]contracts.Observation, error) {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", string(interval))

	result, err := c.fetchChart(ctx, symbol, params)
	if err != nil {
		return nil, err
	}

	prices := observationsFrom(result)
	c.logger.WithFields(map[string]interface{}{
		"symbol":   symbol,
		"interval": string(interval),
		"count":    len(prices),
	}).Debug("Fetched history")

	return prices, nil
}

// FetchLatest fetches the most recent daily bar for a symbol. The analysis
// pipeline uses it as an existence probe before requesting full history.
func (c *Client) FetchLatest(ctx context.Context, symbol string) ([]contracts.Observation, error) {
	params := url.Values{}
	params.Set("range", "1d")
	params.Set("interval", string(IntervalDaily))

	result, err := c.fetchChart(ctx, symbol, params)
	if err != nil {
		return nil, err
	}

	prices := observationsFrom(result)
	c.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"count":  len(prices),
	}).Debug("Fetched latest bar")

	return prices, nil
}

// observationsFrom extracts dated adjusted closes from a chart result.
// Null and non-positive entries are dropped.
func observationsFrom(result *chartResult) []contracts.Observation {
	closes := result.adjustedCloses()

	prices := make([]contracts.Observation, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		prices = append(prices, contracts.Observation{
			Date:     time.Unix(ts, 0).UTC(),
			AdjClose: *closes[i],
		})
	}

	return prices
}
