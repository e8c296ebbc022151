// Package scheduler wires up the cron job that keeps the cache warm
// without waiting for user queries.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"concurso-hunter/internal/cache"
	"concurso-hunter/internal/listing"
	"concurso-hunter/internal/reporter"
)

const summaryTopN = 5

// Scheduler wraps robfig/cron and manages the periodic refresh loop.
type Scheduler struct {
	cron     *cron.Cron
	manager  *cache.Manager
	reporter *reporter.TelegramReporter
	spec     string
}

// New creates a Scheduler that refreshes every intervalHours hours.
func New(manager *cache.Manager, rep *reporter.TelegramReporter, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		manager:  manager,
		reporter: rep,
		spec:     fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also refreshes once
// immediately so the cache is warm before the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("⏰ refresh scheduler started — spec: %s", s.spec)

	go s.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("⏰ refresh scheduler stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	log.Println("🔄 scheduled refresh starting")
	records := s.manager.GetRecords(ctx, true)
	if len(records) == 0 {
		log.Println("⚠️ scheduled refresh produced no records")
		return
	}

	top := make([]listing.DisplayRecord, 0, summaryTopN)
	for _, rec := range records {
		if len(top) == summaryTopN {
			break
		}
		top = append(top, rec.Display())
	}

	//side channel only, a send failure must never matter
	go func() {
		if err := s.reporter.SendRefreshSummary(len(records), top); err != nil {
			log.Printf("⚠️ telegram summary failed: %v", err)
		}
	}()
}
