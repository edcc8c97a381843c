package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/scamdex/scamdex-api/databases"
)

// Scheduler handles periodic background jobs for the catalog
type Scheduler struct {
	cron *cron.Cron
	SDB  databases.ScamReportDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(sdb databases.ScamReportDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		SDB:  sdb,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Log a catalog stats snapshot daily at 2 AM UTC
	_, err := s.cron.AddFunc("0 2 * * *", s.snapshotStats)
	if err != nil {
		zap.S().Errorw("failed to register stats snapshot job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Catalog scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Catalog scheduler stopped")
}

func (s *Scheduler) snapshotStats() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := s.SDB.Stats(ctx)
	if err != nil {
		zap.S().Errorw("failed to aggregate catalog stats", "error", err)
		return
	}

	zap.S().Infow("catalog stats snapshot",
		"totalScams", stats.TotalScams,
		"avgFraudScore", stats.AvgFraudScore,
		"highRiskScams", stats.HighRiskScams,
		"distinctTags", len(stats.TagStats),
	)
}
