// Package scheduler runs the periodic maintenance jobs while the board
// view is open: quest regeneration at period boundaries and diagnostic
// store cleanup.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talha426/Shadow-Console-Track/internal/diag"
	"github.com/talha426/Shadow-Console-Track/internal/engine"
)

// Config tunes the maintenance jobs.
type Config struct {
	// DiagRetention bounds the age of diagnostic entries.
	DiagRetention time.Duration
}

// Scheduler drives the quest reset and diagnostic cleanup cycles.
type Scheduler struct {
	svc    *engine.Service
	diag   *diag.Log
	logger *zap.Logger
	cron   *cron.Cron
	cfg    Config
}

func New(svc *engine.Service, dl *diag.Log, logger *zap.Logger, cfg Config) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DiagRetention <= 0 {
		cfg.DiagRetention = 7 * 24 * time.Hour
	}

	s := &Scheduler{
		svc:    svc,
		diag:   dl,
		logger: logger,
		cron:   cron.New(),
		cfg:    cfg,
	}

	// Quest freshness right after midnight; the same pass handles the
	// weekly boundary via the reset markers.
	_, _ = s.cron.AddFunc("1 0 * * *", s.refreshQuests)
	_, _ = s.cron.AddFunc("@hourly", s.cleanupDiagnostics)
	return s
}

// Start launches the cron scheduler.
func (s *Scheduler) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Debug("scheduler started")
}

// Stop halts the scheduler and waits for running jobs, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Debug("scheduler stopped")
}

func (s *Scheduler) refreshQuests() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.svc.EnsureQuestsFresh(ctx); err != nil {
		s.logger.Error("quest refresh failed", zap.Error(err))
		if recErr := s.diag.Record(diag.Entry{
			Kind:     diag.KindSystem,
			Severity: diag.SeverityMedium,
			Action:   "QUEST_REFRESH",
			Message:  err.Error(),
		}); recErr != nil {
			s.logger.Warn("record diagnostic", zap.Error(recErr))
		}
	}
}

func (s *Scheduler) cleanupDiagnostics() {
	cutoff := time.Now().Add(-s.cfg.DiagRetention)
	if err := s.diag.Cleanup(cutoff); err != nil {
		s.logger.Error("diagnostic cleanup failed", zap.Error(err))
	}
}
