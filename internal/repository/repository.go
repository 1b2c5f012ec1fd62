package repository

import (
	"context"

	"github.com/agricure/api/internal/models"
)

// FarmRepository defines data access for managed farms.
type FarmRepository interface {
	// List returns all farms ordered by name.
	// Returns an empty slice if there are none.
	List(ctx context.Context) ([]models.Farm, error)

	// Save inserts the farm or replaces the stored farm with the same ID.
	Save(ctx context.Context, farm *models.Farm) error
}

// RecommendationLogRepository defines data access for recommendation history.
type RecommendationLogRepository interface {
	// List returns up to limit logs, newest first.
	// Returns an empty slice if there are none.
	List(ctx context.Context, limit int) ([]models.RecommendationLog, error)

	// Create stores a new log. The caller assigns ID and CreatedAt.
	Create(ctx context.Context, log *models.RecommendationLog) error
}
