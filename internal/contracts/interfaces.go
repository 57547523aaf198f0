package contracts

import (
	"context"
	"time"
)

// ReturnSource provides monthly return series for symbols over a window.
// Implementations never fail: a symbol whose history cannot be fetched
// yields an empty series.
type ReturnSource interface {
	MonthlyReturns(ctx context.Context, symbol string, from, to time.Time) ReturnSeries
}
