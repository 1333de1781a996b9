package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stockdash/internal/model"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	require.Equal(t, "ADBE", cfg.Dashboard.Ticker)
	require.Equal(t, "1d", cfg.Dashboard.Period)
	require.Equal(t, "candlestick", cfg.Dashboard.ChartType)
	require.Equal(t, []string{"AAPL", "GOOGL", "AMZN", "MSFT"}, cfg.Watchlist.Symbols)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
dashboard:
  ticker: NVDA
  period: 1y
  chart_type: line
  indicators: [SMA_20, EMA_20]
watchlist:
  symbols: [TSLA]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	req := cfg.Request()
	require.Equal(t, "NVDA", req.Symbol)
	require.Equal(t, model.PeriodYear, req.Period)
	require.Equal(t, model.ChartLine, req.ChartType)
	require.Equal(t, []string{model.IndicatorSMA20, model.IndicatorEMA20}, req.Indicators)
	require.Equal(t, []string{"TSLA"}, cfg.Watchlist.Symbols)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TICKER", "AMD")
	t.Setenv("PERIOD", "1mo")
	t.Setenv("WATCHLIST", "IBM, ORCL")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "AMD", cfg.Dashboard.Ticker)
	require.Equal(t, "1mo", cfg.Dashboard.Period)
	require.Equal(t, []string{"IBM", "ORCL"}, cfg.Watchlist.Symbols)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.Dashboard.Period = "2d"
	require.Error(t, cfg.Validate())

	cfg.Dashboard.Period = "1d"
	cfg.Dashboard.ChartType = "pie"
	require.Error(t, cfg.Validate())

	cfg.Dashboard.ChartType = "line"
	cfg.Dashboard.Indicators = []string{"RSI_14"}
	require.Error(t, cfg.Validate())
}
