package yahoo

import "fmt"

// Interval selects the bar width of a chart request
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalMonthly Interval = "1mo"
)

// APIError is the error object Yahoo embeds in a chart response
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo chart API error: %s: %s", e.Code, e.Description)
}

// chartResponse is the top-level container of the v8 chart API
type chartResponse struct {
	Chart chartData `json:"chart"`
}

type chartData struct {
	Result []chartResult `json:"result"`
	Error  *APIError     `json:"error"`
}

// chartResult holds one symbol's bars
type chartResult struct {
	Meta       chartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators chartIndicators `json:"indicators"`
}

type chartMeta struct {
	Symbol   string `json:"symbol"`
	Currency string `json:"currency"`
}

type chartIndicators struct {
	Quote    []chartQuote    `json:"quote"`
	Adjclose []chartAdjclose `json:"adjclose"`
}

// Price arrays are pointer-typed because Yahoo emits null for periods
// without a usable quote
type chartQuote struct {
	Close []*float64 `json:"close"`
}

type chartAdjclose struct {
	Adjclose []*float64 `json:"adjclose"`
}

// adjustedCloses returns the adjusted close array, falling back to the raw
// close when the response carries no adjclose block
func (r *chartResult) adjustedCloses() []*float64 {
	if len(r.Indicators.Adjclose) > 0 && len(r.Indicators.Adjclose[0].Adjclose) > 0 {
		return r.Indicators.Adjclose[0].Adjclose
	}
	if len(r.Indicators.Quote) > 0 {
		return r.Indicators.Quote[0].Close
	}
	return nil
}
