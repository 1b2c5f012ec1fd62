package repository

import (
	"context"
	"fmt"
	"time"
)

// SeedDemoData fills empty stores with the demo farms and recommendation
// history that in-memory mode starts with. Stores that already hold rows are
// left untouched.
func SeedDemoData(ctx context.Context, farms FarmRepository, logs RecommendationLogRepository, now time.Time) error {
	existingFarms, err := farms.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list farms: %w", err)
	}
	if len(existingFarms) == 0 {
		for _, f := range DemoFarms(now) {
			if err := farms.Save(ctx, &f); err != nil {
				return fmt.Errorf("failed to seed farm %s: %w", f.ID, err)
			}
		}
	}

	existingLogs, err := logs.List(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to list recommendation logs: %w", err)
	}
	if len(existingLogs) == 0 {
		for _, l := range DemoLogs() {
			if err := logs.Create(ctx, &l); err != nil {
				return fmt.Errorf("failed to seed recommendation log %s: %w", l.ID, err)
			}
		}
	}

	return nil
}
