package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"board-automation-api/internal/repository"
)

// ExecutionCleanupJob prunes rule execution audit records past the retention
// window. It runs on the cron schedule configured in engine.cleanup_schedule.
type ExecutionCleanupJob struct {
	executionRepo repository.ExecutionRepository
	retention     time.Duration
	logger        *zap.Logger
}

// NewExecutionCleanupJob creates a new ExecutionCleanupJob instance
func NewExecutionCleanupJob(
	executionRepo repository.ExecutionRepository,
	retention time.Duration,
	logger *zap.Logger,
) *ExecutionCleanupJob {
	return &ExecutionCleanupJob{
		executionRepo: executionRepo,
		retention:     retention,
		logger:        logger,
	}
}

// Run executes one cleanup pass
func (j *ExecutionCleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	j.logger.Info("Starting execution cleanup job",
		zap.Time("cutoff", cutoff),
	)

	deleted, err := j.executionRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to delete old rule executions",
			zap.Error(err),
		)
		return
	}

	j.logger.Info("Execution cleanup job completed",
		zap.Int64("deleted", deleted),
	)
}
