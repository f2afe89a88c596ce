package utils

import (
	"fomo/logger"
	"time"

	"github.com/robfig/cron/v3"
)

// IdleSweeper drops drafts left untouched for longer than ttl.
type IdleSweeper interface {
	SweepIdle(ttl time.Duration) int
	Len() int
}

// InitializeDraftScheduler starts the cron job that expires abandoned
// drafts. The caller stops it on shutdown.
func InitializeDraftScheduler(schedule string, ttl time.Duration, drafts IdleSweeper, log *logger.Logger) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(schedule, func() { SweepIdleDrafts(drafts, ttl, log) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Info("draft scheduler started", "schedule", schedule, "idle_ttl", ttl.String())
	return c, nil
}

// SweepIdleDrafts runs one expiry pass
func SweepIdleDrafts(drafts IdleSweeper, ttl time.Duration, log *logger.Logger) int {
	swept := drafts.SweepIdle(ttl)
	if swept > 0 {
		log.Info("expired idle drafts", "count", swept, "open", drafts.Len())
	}
	return swept
}
