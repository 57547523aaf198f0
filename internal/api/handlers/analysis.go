package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/argus/backend/internal/analysis"
	"github.com/wonny/argus/backend/internal/contracts"
	"github.com/wonny/argus/backend/pkg/logger"
)

// Analyzer produces correlation and Sharpe statistics for a set of tickers.
type Analyzer interface {
	Analyze(ctx context.Context, tickers []string) (*contracts.AnalysisResult, error)
}

// AnalysisHandler handles stock analysis API endpoints
// ⭐ SSOT: analysis API handlers live on this struct only
type AnalysisHandler struct {
	analyzer Analyzer
	validate *validator.Validate
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer Analyzer, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		validate: validator.New(),
		logger:   log,
	}
}

// StockDataRequest represents a stock analysis request
type StockDataRequest struct {
	Tickers []string `json:"tickers" validate:"required"`
}

// StockData runs the correlation and Sharpe analysis for the requested tickers
// POST /api/stock-data
func (h *AnalysisHandler) StockData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse request
	var req StockDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// A missing or non-list tickers field is a client error. An empty
	// list is well-formed and yields an empty result.
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request: 'tickers' must be a list of symbols")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"tickers": req.Tickers,
	}).Info("Stock analysis requested")

	result, err := h.analyzer.Analyze(ctx, req.Tickers)
	if err != nil {
		var benchErr *analysis.BenchmarkUnavailableError
		if errors.As(err, &benchErr) {
			h.logger.WithError(err).Warn("No benchmark available")
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.WithError(err).Error("Stock analysis failed")
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
