package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"stockdash/internal/model"
	"stockdash/internal/orchestrator"
)

// Scheduler drives the watch mode: periodic refreshes of the main chart and
// of the watchlist. A mutex serializes the tasks so pipeline runs never
// overlap.
type Scheduler struct {
	Cron         *cron.Cron
	Orchestrator *orchestrator.Orchestrator
	Request      model.ChartRequest

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler for the given standing chart request.
func NewScheduler(o *orchestrator.Orchestrator, req model.ChartRequest) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Orchestrator: o,
		Request:      req,
	}
}

// RegisterAll registers the chart and watchlist refresh tasks.
func (s *Scheduler) RegisterAll(chartCron, watchlistCron string) error {
	if _, err := s.Cron.AddFunc(chartCron, s.chartTask); err != nil {
		return fmt.Errorf("register chart task: %w", err)
	}
	if _, err := s.Cron.AddFunc(watchlistCron, s.watchlistTask); err != nil {
		return fmt.Errorf("register watchlist task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes both refresh tasks immediately (startup / manual trigger).
func (s *Scheduler) RunNow() {
	s.chartTask()
	s.watchlistTask()
}

func (s *Scheduler) chartTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orchestrator.UpdateChart(s.Request)
}

func (s *Scheduler) watchlistTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orchestrator.RefreshWatchlist()
}
