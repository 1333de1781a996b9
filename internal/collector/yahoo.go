package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"stockdash/internal/model"
)

// YahooFetcher implements Fetcher using Yahoo Finance public chart API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// Fetch retrieves a raw time-series table for the symbol over the given
// period with the given bar interval. The "1wk" period requests an explicit
// 7-day trailing window; every other period passes its token as the range.
func (f *YahooFetcher) Fetch(symbol string, period model.Period, interval string) (*model.Table, error) {
	ticker := f.yahooSymbol(symbol)

	q := url.Values{}
	q.Set("interval", interval)
	if period == model.PeriodWeek {
		end := time.Now()
		start := end.AddDate(0, 0, -7)
		q.Set("period1", fmt.Sprintf("%d", start.Unix()))
		q.Set("period2", fmt.Sprintf("%d", end.Unix()))
	} else {
		q.Set("range", string(period))
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", f.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no result returned")
	}

	return buildRawTable(&chart, ticker, interval), nil
}

// bar is an intermediate row used to drop null bars and sort by time.
type bar struct {
	ts                 time.Time
	o, h, l, c, volume float64
}

// buildRawTable assembles the provider's table shape: a timestamp index named
// "Date" for daily-or-wider intervals and "Datetime" for intraday ones, with
// two-level (field, ticker) column labels.
func buildRawTable(chart *yahooChart, ticker, interval string) *model.Table {
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return &model.Table{IndexName: indexNameFor(interval), IndexTZ: time.UTC}
	}
	quote := result.Indicators.Quote[0]

	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		b := bar{
			ts:     time.Unix(ts, 0).UTC(),
			o:      toFloat(quote.Open[i]),
			h:      toFloat(quote.High[i]),
			l:      toFloat(quote.Low[i]),
			c:      toFloat(quote.Close[i]),
			volume: toFloat(quote.Volume[i]),
		}
		if b.o == 0 && b.h == 0 && b.l == 0 && b.c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, b)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts.Before(bars[j].ts) })

	t := &model.Table{
		IndexName: indexNameFor(interval),
		Index:     make([]time.Time, len(bars)),
		IndexTZ:   time.UTC,
	}
	fields := []struct {
		name string
		get  func(bar) float64
	}{
		{"Open", func(b bar) float64 { return b.o }},
		{"High", func(b bar) float64 { return b.h }},
		{"Low", func(b bar) float64 { return b.l }},
		{"Close", func(b bar) float64 { return b.c }},
		{"Volume", func(b bar) float64 { return b.volume }},
	}
	for _, fld := range fields {
		values := make([]float64, len(bars))
		for i, b := range bars {
			values[i] = fld.get(b)
		}
		t.Columns = append(t.Columns, model.Column{
			Label:  model.Label{Name: fld.name, Sub: ticker},
			Values: values,
		})
	}
	for i, b := range bars {
		t.Index[i] = b.ts
	}
	return t
}

// indexNameFor mirrors the provider's divergent index naming: intraday bars
// use "Datetime", daily and wider bars use "Date".
func indexNameFor(interval string) string {
	if strings.HasSuffix(interval, "m") || strings.HasSuffix(interval, "h") {
		return "Datetime"
	}
	return "Date"
}
