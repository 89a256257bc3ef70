// Package jobs runs the background schedule: the twice-daily motivational
// drops.
package jobs

import (
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler triggers broadcasts on the configured cron expressions.
// Times are interpreted in the server's local timezone.
type Scheduler struct {
	cron      *cron.Cron
	broadcast func()
	specs     []string
}

// NewScheduler wires the drop broadcast to its cron specs. Standard
// five-field cron syntax, e.g. "0 7 * * *".
func NewScheduler(broadcast func(), specs ...string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		broadcast: broadcast,
		specs:     specs,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	for _, spec := range s.specs {
		spec := spec
		if _, err := s.cron.AddFunc(spec, func() {
			log.WithField("spec", spec).Info("[CRON] running drop broadcast")
			s.broadcast()
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	log.WithField("jobs", len(s.specs)).Info("scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}
