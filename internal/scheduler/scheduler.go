package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

// Pruner drops expired entries and reports how many it removed.
type Pruner interface {
	Prune() int
}

// Scheduler periodically prunes expired preference entries. It never
// refreshes weather data.
type Scheduler struct {
	scheduler *gocron.Scheduler
	pruner    Pruner
	interval  time.Duration
}

// New creates a new Scheduler.
func New(pruner Pruner, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		pruner:    pruner,
		interval:  interval,
	}
}

// Start schedules the prune job and starts the underlying scheduler.
// A non-positive interval disables the job.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logger.Log.Info("scheduler: prune interval not set; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.runPrune)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) runPrune() {
	removed := s.pruner.Prune()
	logger.Log.WithField("removed", removed).Debug("scheduler: pruned expired entries")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
