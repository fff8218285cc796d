package tasks

import (
	"context"
	"fmt"
	"time"
)

// raidRetention is how long raid records and attendance are kept.
const raidRetention = 30 * 24 * time.Hour

// newRaidCleanupTask creates the scheduled task that prunes old raid records.
func newRaidCleanupTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "raid_cleanup")

	return func(ctx context.Context) error {
		cutoff := time.Now().Add(-raidRetention)

		deleted, err := deps.Store.DeleteRaidsBefore(ctx, cutoff)
		if err != nil {
			log.ErrorContext(ctx, "Raid cleanup task failed", "error", err)
			return fmt.Errorf("raid cleanup failed: %w", err)
		}

		log.InfoContext(ctx, "Raid cleanup task completed", "deleted", deleted, "cutoff", cutoff)
		return nil
	}
}
