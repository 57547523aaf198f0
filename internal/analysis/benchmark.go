package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wonny/argus/backend/internal/contracts"
	"github.com/wonny/argus/backend/pkg/logger"
)

// DefaultBenchmarks are the index candidates tried in order
var DefaultBenchmarks = []string{"^IXIC", "^GSPC"}

// BenchmarkUnavailableError reports that every benchmark candidate came
// back empty. The API layer maps it to a client error.
type BenchmarkUnavailableError struct {
	Candidates []string
}

func (e *BenchmarkUnavailableError) Error() string {
	return fmt.Sprintf("unable to fetch benchmark data: tried %s", strings.Join(e.Candidates, ", "))
}

// BenchmarkSelector picks the first candidate index with usable history
// ⭐ SSOT: the benchmark fallback order is decided only here
type BenchmarkSelector struct {
	source     contracts.ReturnSource
	candidates []string
	logger     *logger.Logger
}

// NewBenchmarkSelector creates a selector over the given candidates,
// falling back to DefaultBenchmarks when none are configured
func NewBenchmarkSelector(source contracts.ReturnSource, candidates []string, log *logger.Logger) *BenchmarkSelector {
	if len(candidates) == 0 {
		candidates = DefaultBenchmarks
	}

	return &BenchmarkSelector{
		source:     source,
		candidates: candidates,
		logger:     log.WithField("module", "benchmark"),
	}
}

// Select returns the monthly returns and symbol of the first candidate
// with a non-empty series over [from, to]. When every candidate comes back
// empty it returns a *BenchmarkUnavailableError naming all of them.
func (s *BenchmarkSelector) Select(ctx context.Context, from, to time.Time) (contracts.ReturnSeries, string, error) {
	for _, symbol := range s.candidates {
		series := s.source.MonthlyReturns(ctx, symbol, from, to)
		if !series.IsEmpty() {
			s.logger.WithFields(map[string]interface{}{
				"symbol":  symbol,
				"returns": len(series),
			}).Info("Benchmark selected")
			return series, symbol, nil
		}

		s.logger.WithField("symbol", symbol).Warn("Benchmark candidate empty, trying next")
	}

	return nil, "", &BenchmarkUnavailableError{Candidates: s.candidates}
}
