package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agricure/api/internal/database"
	"github.com/agricure/api/internal/models"
)

// farmRepository is the PostgreSQL implementation of FarmRepository.
type farmRepository struct {
	db *database.Database
}

// NewFarmRepository creates a PostgreSQL-backed FarmRepository.
func NewFarmRepository(db *database.Database) FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) List(ctx context.Context) ([]models.Farm, error) {
	query := `
		SELECT id, name, size, unit, soil_health, updated_at
		FROM farms
		ORDER BY name, id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query farms: %w", err)
	}

	farms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Farm, error) {
		var f models.Farm
		var unit string
		err := row.Scan(&f.ID, &f.Name, &f.Size, &unit, &f.SoilHealth, &f.UpdatedAt)
		f.Unit = models.SizeUnit(unit)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan farm rows: %w", err)
	}

	if farms == nil {
		farms = []models.Farm{}
	}
	return farms, nil
}

func (r *farmRepository) Save(ctx context.Context, farm *models.Farm) error {
	query := `
		INSERT INTO farms (id, name, size, unit, soil_health, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			size = EXCLUDED.size,
			unit = EXCLUDED.unit,
			soil_health = EXCLUDED.soil_health,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Pool.Exec(ctx, query,
		farm.ID, farm.Name, farm.Size, string(farm.Unit), farm.SoilHealth, farm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save farm %s: %w", farm.ID, err)
	}
	return nil
}

// logRepository is the PostgreSQL implementation of RecommendationLogRepository.
type logRepository struct {
	db *database.Database
}

// NewRecommendationLogRepository creates a PostgreSQL-backed RecommendationLogRepository.
func NewRecommendationLogRepository(db *database.Database) RecommendationLogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) List(ctx context.Context, limit int) ([]models.RecommendationLog, error) {
	query := `
		SELECT id, farm_name, crop_type, primary_fertilizer, secondary_fertilizer,
			status, total_inr, created_at
		FROM recommendation_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation logs (limit=%d): %w", limit, err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecommendationLog, error) {
		var l models.RecommendationLog
		var crop, status string
		err := row.Scan(&l.ID, &l.FarmName, &crop, &l.PrimaryFertilizer, &l.SecondaryFertilizer,
			&status, &l.TotalINR, &l.CreatedAt)
		l.CropType = models.CropType(crop)
		l.Status = models.LogStatus(status)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recommendation log rows: %w", err)
	}

	if logs == nil {
		logs = []models.RecommendationLog{}
	}
	return logs, nil
}

func (r *logRepository) Create(ctx context.Context, log *models.RecommendationLog) error {
	query := `
		INSERT INTO recommendation_logs (
			id, farm_name, crop_type, primary_fertilizer, secondary_fertilizer,
			status, total_inr, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		log.ID, log.FarmName, string(log.CropType), log.PrimaryFertilizer, log.SecondaryFertilizer,
		string(log.Status), log.TotalINR, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation log %s: %w", log.ID, err)
	}
	return nil
}
