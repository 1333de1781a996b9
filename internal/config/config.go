package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stockdash/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Dashboard struct {
		Ticker     string   `yaml:"ticker"`
		Period     string   `yaml:"period"`
		ChartType  string   `yaml:"chart_type"`
		Indicators []string `yaml:"indicators"`
	} `yaml:"dashboard"`
	Watchlist struct {
		Symbols []string `yaml:"symbols"`
		Cron    string   `yaml:"cron"`
	} `yaml:"watchlist"`
	Schedule struct {
		ChartCron string `yaml:"chart_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Dashboard.Ticker = v
	}
	if v := os.Getenv("PERIOD"); v != "" {
		cfg.Dashboard.Period = v
	}
	if v := os.Getenv("CHART_TYPE"); v != "" {
		cfg.Dashboard.ChartType = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist.Symbols = splitList(v)
	}
	if v := os.Getenv("WATCHLIST_CRON"); v != "" {
		cfg.Watchlist.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Dashboard.Ticker == "" {
		cfg.Dashboard.Ticker = "ADBE"
	}
	if cfg.Dashboard.Period == "" {
		cfg.Dashboard.Period = string(model.PeriodDay)
	}
	if cfg.Dashboard.ChartType == "" {
		cfg.Dashboard.ChartType = string(model.ChartCandlestick)
	}
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"AAPL", "GOOGL", "AMZN", "MSFT"}
	}
	if cfg.Watchlist.Cron == "" {
		cfg.Watchlist.Cron = "0 * * * * *" // every minute
	}
	if cfg.Schedule.ChartCron == "" {
		cfg.Schedule.ChartCron = "0 */5 * * * *" // every five minutes
	}

	return cfg, nil
}

// Validate checks that all fields hold supported values.
func (c *Config) Validate() error {
	if !model.Period(c.Dashboard.Period).Valid() {
		return fmt.Errorf("dashboard.period %q is not supported", c.Dashboard.Period)
	}
	switch model.ChartType(c.Dashboard.ChartType) {
	case model.ChartCandlestick, model.ChartLine:
	default:
		return fmt.Errorf("dashboard.chart_type %q is not supported", c.Dashboard.ChartType)
	}
	for _, ind := range c.Dashboard.Indicators {
		if ind != model.IndicatorSMA20 && ind != model.IndicatorEMA20 {
			return fmt.Errorf("dashboard.indicators: unknown indicator %q", ind)
		}
	}
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols must not be empty")
	}
	return nil
}

// Request builds the chart request described by the dashboard section.
func (c *Config) Request() model.ChartRequest {
	return model.ChartRequest{
		Symbol:     c.Dashboard.Ticker,
		Period:     model.Period(c.Dashboard.Period),
		ChartType:  model.ChartType(c.Dashboard.ChartType),
		Indicators: c.Dashboard.Indicators,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
