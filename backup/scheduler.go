package backup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the unattended daily backup through a cron expression.
type Scheduler struct {
	Service  *Service
	Schedule string

	cron  *cron.Cron
	entry cron.EntryID
}

func NewScheduler(service *Service, schedule string) *Scheduler {
	return &Scheduler{Service: service, Schedule: schedule}
}

// Start the backup cron.
func (s *Scheduler) Start() error {
	s.cron = cron.New()
	s.cron.Start()

	if s.Schedule == "" {
		return nil
	}

	var err error
	s.entry, err = s.cron.AddFunc(s.Schedule, func() {
		s.Service.RunScheduledBackup(context.Background(), time.Now().UTC())
		log.Printf("[Next Backup: %s]", s.cron.Entry(s.entry).Next)
	})
	if err != nil {
		return fmt.Errorf("failed to create backup schedule: %w", err)
	}
	log.Printf("[Next Backup: %s]", s.cron.Entry(s.entry).Next)
	return nil
}

// Stop the backup cron, waiting at most timeout for a running job.
func (s *Scheduler) Stop(timeout time.Duration) {
	if s.cron != nil {
		ctx := s.cron.Stop()
		select {
		case <-ctx.Done():
		case <-time.After(timeout):
		}
	}
}
