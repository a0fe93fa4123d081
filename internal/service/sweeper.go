package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleEngines removes engines that have seen no player intent since a given moment.
type IdleEngines interface {
	Sweep(idleSince time.Time) int
}

// SweeperService periodically drops idle game sessions.
type SweeperService struct {
	engines  IdleEngines
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewSweeperService creates a new sweeper running on a cron schedule.
func NewSweeperService(engines IdleEngines, schedule string, ttl time.Duration, logger *zap.Logger) *SweeperService {
	return &SweeperService{
		engines:  engines,
		schedule: schedule,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the sweeping schedule until ctx is done.
func (s *SweeperService) Start(ctx context.Context) {
	s.logger.Info("session sweeper started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		s.SweepOnce()
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("session sweeper stopped")
}

// SweepOnce removes engines idle for longer than the ttl and returns how many were removed.
func (s *SweeperService) SweepOnce() int {
	removed := s.engines.Sweep(s.now().Add(-s.ttl))
	if removed > 0 {
		s.logger.Info("idle sessions removed", zap.Int("count", removed))
	}
	return removed
}
