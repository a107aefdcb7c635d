package daily

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler pre-warms the daily content cache shortly after midnight so the
// first visitor of the day does not pay the generation round trip.
type Scheduler struct {
	svc  *Service
	cron *cron.Cron
}

func NewScheduler(svc *Service) *Scheduler {
	return &Scheduler{svc: svc}
}

func (s *Scheduler) Start() {
	s.cron = cron.New(cron.WithLocation(Location()))

	// five past midnight, local calendar
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		c := s.svc.Refresh(ctx)
		if c.IsFallback {
			log.Printf("daily content pre-warm served fallback: %s", c.Diagnostic)
		} else {
			log.Println("daily content pre-warmed")
		}
	})
	if err != nil {
		log.Printf("failed to schedule daily content pre-warm: %v", err)
		return
	}
	s.cron.Start()
	log.Println("daily content scheduler started (00:05 IST)")
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
