package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/config"
	"github.com/furnishhq/quotation-api/internal/repository"
)

// DraftCleanupJob removes stale empty draft projects. Drafts that still
// have no rooms after the retention window are abandoned quote attempts;
// their quotation numbers are consumed and stay consumed.
type DraftCleanupJob struct {
	projectRepo   *repository.ProjectRepository
	retentionDays int
	logger        *zap.Logger
}

// NewDraftCleanupJob creates the cleanup job from configuration
func NewDraftCleanupJob(projectRepo *repository.ProjectRepository, cfg *config.JobsConfig, logger *zap.Logger) *DraftCleanupJob {
	retention := cfg.DraftRetentionDays
	if retention <= 0 {
		retention = 90
	}
	return &DraftCleanupJob{
		projectRepo:   projectRepo,
		retentionDays: retention,
		logger:        logger,
	}
}

// Run deletes empty drafts older than the retention window
func (j *DraftCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)
	deleted, err := j.projectRepo.DeleteEmptyDraftsBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("draft cleanup failed", zap.Error(err))
		return
	}

	if deleted > 0 {
		j.logger.Info("stale empty drafts removed",
			zap.Int64("count", deleted),
			zap.Time("cutoff", cutoff),
		)
	}
}

// Register adds the job to the scheduler using the configured cron expression
func (j *DraftCleanupJob) Register(scheduler *Scheduler, cronExpr string) error {
	return scheduler.AddJob("draft-cleanup", cronExpr, j.Run)
}
