package contracts

import "time"

// dateKey is the calendar-date format used to join series
const dateKey = "2006-01-02"

// Observation is a single dated adjusted-close price for one symbol
type Observation struct {
	Date     time.Time `json:"date"`
	AdjClose float64   `json:"adj_close"`
}

// ReturnPoint is a single dated fractional price change
type ReturnPoint struct {
	Date   time.Time `json:"date"`
	Return float64   `json:"return"`
}

// ReturnSeries is a chronological sequence of fractional returns with
// unique dates. An empty series marks a symbol whose history could not
// be fetched.
// ⭐ SSOT: every price history becomes one of these before any statistics run
type ReturnSeries []ReturnPoint

// IsEmpty reports whether the series holds no returns
func (s ReturnSeries) IsEmpty() bool {
	return len(s) == 0
}

// Values returns the raw return values in chronological order.
// Never nil, so it marshals as [] rather than null.
func (s ReturnSeries) Values() []float64 {
	values := make([]float64, 0, len(s))
	for _, p := range s {
		values = append(values, p.Return)
	}
	return values
}

// BuildReturns converts a price history into period-over-period fractional
// returns. The first observation is the base and produces no return, so a
// history of n prices yields n-1 returns; fewer than two prices yield an
// empty series.
func BuildReturns(prices []Observation) ReturnSeries {
	if len(prices) < 2 {
		return ReturnSeries{}
	}

	series := make(ReturnSeries, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1].AdjClose
		if prev == 0 {
			continue
		}
		series = append(series, ReturnPoint{
			Date:   prices[i].Date,
			Return: (prices[i].AdjClose - prev) / prev,
		})
	}

	return series
}

// AlignedPair holds two return sequences restricted to their shared dates,
// in chronological order. A and B always have equal length.
type AlignedPair struct {
	A []float64
	B []float64
}

// IsEmpty reports whether the pair shares no dates
func (p AlignedPair) IsEmpty() bool {
	return len(p.A) == 0
}

// Len returns the number of shared dates
func (p AlignedPair) Len() int {
	return len(p.A)
}

// Align inner-joins two return series by calendar date (UTC). Dates present
// in only one series are dropped; order follows series a.
func Align(a, b ReturnSeries) AlignedPair {
	byDate := make(map[string]float64, len(b))
	for _, p := range b {
		byDate[p.Date.UTC().Format(dateKey)] = p.Return
	}

	pair := AlignedPair{A: []float64{}, B: []float64{}}
	for _, p := range a {
		if v, ok := byDate[p.Date.UTC().Format(dateKey)]; ok {
			pair.A = append(pair.A, p.Return)
			pair.B = append(pair.B, v)
		}
	}

	return pair
}
