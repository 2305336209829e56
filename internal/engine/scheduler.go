package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
)

// Scheduler runs engine checks periodically. A tick that fires while the
// previous check is still running is skipped.
type Scheduler struct {
	cron    *cron.Cron
	engine  *Engine
	log     *slog.Logger
	entryID cron.EntryID
}

// NewScheduler creates a Scheduler that runs a check every interval.
func NewScheduler(eng *Engine, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.New("check interval must be positive")
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runCheck)
	if err != nil {
		return nil, err
	}
	s.entryID = id

	return s, nil
}

// Start begins running scheduled checks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.syncNextRun()
}

// Stop stops the scheduler. The returned context is done once a running
// check has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) syncNextRun() {
	if next := s.cron.Entry(s.entryID).Next; !next.IsZero() {
		metrics.SchedulerNextCheckTimestamp.Set(float64(next.Unix()))
	}
}

func (s *Scheduler) runCheck() {
	defer s.syncNextRun()

	s.log.Info("scheduled check starting")
	if _, err := s.engine.RunCheck(context.Background()); err != nil {
		s.log.Error("scheduled check failed", "error", err)
	}
}
