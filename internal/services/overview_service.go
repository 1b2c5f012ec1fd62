package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/recommendation"
	"github.com/agricure/api/internal/repository"
)

// OverviewLogLimit is how many recent log entries the overview carries.
const OverviewLogLimit = 3

// OverviewService builds the dashboard landing view.
type OverviewService interface {
	// Overview loads farms, recent history and the latest reading concurrently.
	// Any failing part fails the whole overview.
	Overview(ctx context.Context) (*models.Overview, error)

	// Farms returns all managed farms.
	Farms(ctx context.Context) ([]models.Farm, error)
}

type overviewService struct {
	farms   repository.FarmRepository
	logs    repository.RecommendationLogRepository
	sensors SensorService
	log     *logger.Logger
	now     func() time.Time
}

// NewOverviewService creates a new instance of OverviewService.
func NewOverviewService(
	farms repository.FarmRepository,
	logs repository.RecommendationLogRepository,
	sensors SensorService,
	log *logger.Logger,
) OverviewService {
	return &overviewService{
		farms:   farms,
		logs:    logs,
		sensors: sensors,
		log:     log,
		now:     time.Now,
	}
}

func (s *overviewService) Overview(ctx context.Context) (*models.Overview, error) {
	var (
		farms    []models.Farm
		logs     []models.RecommendationLog
		snapshot *models.SensorSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		farms, err = s.farms.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list farms: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.logs.List(gctx, OverviewLogLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent recommendations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snapshot, err = s.sensors.Latest(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to build overview", err, nil)
		return nil, err
	}

	var total float64
	for _, f := range farms {
		total += recommendation.ConvertToHectares(f.Size, f.Unit)
	}

	return &models.Overview{
		GeneratedAt:   s.now().UTC(),
		Sensor:        *snapshot,
		Farms:         farms,
		RecentLogs:    logs,
		TotalHectares: total,
	}, nil
}

func (s *overviewService) Farms(ctx context.Context) ([]models.Farm, error) {
	farms, err := s.farms.List(ctx)
	if err != nil {
		s.log.Error("Failed to list farms", err, nil)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return farms, nil
}
