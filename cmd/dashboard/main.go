package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stockdash/internal/collector"
	"stockdash/internal/config"
	"stockdash/internal/orchestrator"
	"stockdash/internal/render"
	"stockdash/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	var (
		flagConfig     = flag.String("config", cfgPath, "path to YAML config")
		flagSymbol     = flag.String("symbol", "", "ticker symbol (overrides config)")
		flagPeriod     = flag.String("period", "", "time period: 1d, 1wk, 1mo, 1y, max")
		flagChart      = flag.String("chart", "", "chart type: candlestick or line")
		flagIndicators = flag.String("indicators", "", "comma-separated overlays: SMA_20,EMA_20")
		flagWatch      = flag.Bool("watch", false, "keep running and refresh on a schedule")
	)
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *flagSymbol != "" {
		cfg.Dashboard.Ticker = *flagSymbol
	}
	if *flagPeriod != "" {
		cfg.Dashboard.Period = *flagPeriod
	}
	if *flagChart != "" {
		cfg.Dashboard.ChartType = *flagChart
	}
	if *flagIndicators != "" {
		cfg.Dashboard.Indicators = nil
		for _, ind := range strings.Split(*flagIndicators, ",") {
			if ind = strings.TrimSpace(ind); ind != "" {
				cfg.Dashboard.Indicators = append(cfg.Dashboard.Indicators, ind)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	renderer := render.NewTerminal(os.Stdout)
	orch := orchestrator.NewOrchestrator(fetcher, renderer, cfg.Watchlist.Symbols)
	req := cfg.Request()

	if !*flagWatch {
		state := orch.UpdateChart(req)
		orch.RefreshWatchlist()
		if state == orchestrator.StateError {
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(orch, req)
	if err := sched.RegisterAll(cfg.Schedule.ChartCron, cfg.Watchlist.Cron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	go sched.RunNow()
	log.Printf("[INFO] watching %s (%s) and %d watchlist symbols, Ctrl+C to stop",
		req.Symbol, req.Period, len(cfg.Watchlist.Symbols))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}
