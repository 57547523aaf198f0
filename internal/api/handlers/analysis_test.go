package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/argus/backend/internal/analysis"
	"github.com/wonny/argus/backend/internal/contracts"
	"github.com/wonny/argus/backend/pkg/logger"
)

type stubAnalyzer struct {
	result *contracts.AnalysisResult
	err    error

	called  bool
	tickers []string
}

func (s *stubAnalyzer) Analyze(ctx context.Context, tickers []string) (*contracts.AnalysisResult, error) {
	s.called = true
	s.tickers = tickers
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func postStockData(h *AnalysisHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/stock-data", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.StockData(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestStockData_Success(t *testing.T) {
	stub := &stubAnalyzer{
		result: &contracts.AnalysisResult{
			StockData: []contracts.TickerResult{
				{Ticker: "AAPL", Correlation: 0.91, SharpeRatio: 1.4, Returns: []float64{0.02, 0.01}},
				{Ticker: "MSFT", Correlation: 0.85, SharpeRatio: 1.1, Returns: []float64{0.03, -0.01}},
			},
			BenchmarkReturns:  []float64{0.015, 0.005},
			BenchmarkUsed:     "^IXIC",
			HighestCorrTicker: "AAPL",
			LowestCorrTicker:  "MSFT",
		},
	}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": ["AAPL", "MSFT"]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, []string{"AAPL", "MSFT"}, stub.tickers)

	var got contracts.AnalysisResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, *stub.result, got)
}

func TestStockData_EmptyTickerList(t *testing.T) {
	stub := &stubAnalyzer{
		result: &contracts.AnalysisResult{
			StockData:        []contracts.TickerResult{},
			BenchmarkReturns: []float64{0.015},
			BenchmarkUsed:    "^IXIC",
		},
	}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": []}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, stub.called)
	assert.Empty(t, stub.tickers)
}

func TestStockData_InvalidJSON(t *testing.T) {
	stub := &stubAnalyzer{}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": [`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", errorBody(t, rr))
	assert.False(t, stub.called)
}

func TestStockData_MissingTickers(t *testing.T) {
	stub := &stubAnalyzer{}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, errorBody(t, rr), "tickers")
	assert.False(t, stub.called)
}

func TestStockData_TickersNotAList(t *testing.T) {
	stub := &stubAnalyzer{}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": "AAPL"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, stub.called)
}

func TestStockData_BenchmarkUnavailable(t *testing.T) {
	stub := &stubAnalyzer{
		err: &analysis.BenchmarkUnavailableError{Candidates: []string{"^IXIC", "^GSPC"}},
	}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": ["AAPL"]}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	msg := errorBody(t, rr)
	assert.Contains(t, msg, "^IXIC")
	assert.Contains(t, msg, "^GSPC")
}

func TestStockData_AnalyzerFault(t *testing.T) {
	stub := &stubAnalyzer{err: errors.New("ticker cache corrupted")}
	h := NewAnalysisHandler(stub, logger.NewDiscard())

	rr := postStockData(h, `{"tickers": ["AAPL"]}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "ticker cache corrupted", errorBody(t, rr))
}
