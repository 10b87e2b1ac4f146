// Package scheduler runs the periodic valuation refresh: a cron job that
// pulls current AVM estimates for every active property and records them
// as valuations.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/propfolio/backend/internal/service"
)

// refreshTimeout bounds one full refresh run.
const refreshTimeout = 10 * time.Minute

// Scheduler wraps a cron instance with the valuation refresh job.
type Scheduler struct {
	cron             *cron.Cron
	valuationService *service.ValuationService
	provider         service.EstimateProvider
}

// New creates a scheduler with the refresh job registered on the given
// cron expression (standard 5-field syntax, e.g. "0 6 * * *").
func New(valuationService *service.ValuationService, provider service.EstimateProvider, schedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:             cron.New(),
		valuationService: valuationService,
		provider:         provider,
	}

	if _, err := s.cron.AddFunc(schedule, s.runRefresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	refreshed, err := s.valuationService.RefreshFromProvider(ctx, s.provider)
	if err != nil {
		log.Printf("valuation refresh failed after %d properties: %v", refreshed, err)
		return
	}

	log.Printf("valuation refresh completed: %d properties in %s", refreshed, time.Since(start))
}
