package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/recommendation"
	"github.com/agricure/api/internal/repository"
)

// History limit constants
const (
	DefaultHistoryLimit = 10
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 100
)

// Service-level errors
var (
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)

// RecommendationService defines the interface for fertilizer plan operations.
type RecommendationService interface {
	// Generate parses the submitted form, computes a plan and records a
	// pending history entry for the field.
	// Returns an error wrapping recommendation.ErrInvalidObservation
	// (an *recommendation.InputParseError) if the form does not validate.
	// A failed history write is logged and does not fail the request.
	Generate(ctx context.Context, session models.Session, form models.FieldObservationForm) (*models.PlanResult, error)

	// History returns up to limit recent log entries, newest first.
	// Returns ErrInvalidLimit if limit is not between 1 and 100.
	History(ctx context.Context, limit int) ([]models.RecommendationLog, error)
}

// recommendationService is the concrete implementation of RecommendationService.
type recommendationService struct {
	logs repository.RecommendationLogRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewRecommendationService creates a new instance of RecommendationService.
func NewRecommendationService(logs repository.RecommendationLogRepository, log *logger.Logger) RecommendationService {
	return &recommendationService{
		logs: logs,
		log:  log,
		now:  time.Now,
	}
}

func (s *recommendationService) Generate(ctx context.Context, session models.Session, form models.FieldObservationForm) (*models.PlanResult, error) {
	log := s.log.WithUser(session.UserName)

	obs, err := recommendation.ParseObservation(form)
	if err != nil {
		log.Warn("Rejected field observation", map[string]interface{}{
			"field_name": form.FieldName,
			"error":      err.Error(),
		})
		return nil, err
	}

	plan := recommendation.ComputePlan(obs)
	generatedAt := s.now().UTC()

	entry := &models.RecommendationLog{
		ID:                  uuid.NewString(),
		FarmName:            obs.FieldName,
		CropType:            obs.CropType,
		PrimaryFertilizer:   plan.PrimaryFertilizer.Name,
		SecondaryFertilizer: plan.SecondaryFertilizer.Name,
		Status:              models.LogPending,
		TotalINR:            plan.CostEstimate.TotalINR,
		CreatedAt:           generatedAt,
	}

	result := &models.PlanResult{
		GeneratedAt: generatedAt,
		Plan:        plan,
		Observation: obs,
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		log.Error("Failed to record recommendation history", err, map[string]interface{}{
			"field_name": obs.FieldName,
		})
	} else {
		result.LogID = entry.ID
	}

	log.Info("Fertilizer plan generated", map[string]interface{}{
		"field_name": obs.FieldName,
		"crop_type":  obs.CropType,
		"hectares":   plan.Hectares,
		"deficient":  plan.SoilConditionAnalysis.NutrientDeficiency,
		"total_inr":  plan.CostEstimate.TotalINR,
	})

	return result, nil
}

func (s *recommendationService) History(ctx context.Context, limit int) ([]models.RecommendationLog, error) {
	if limit < MinHistoryLimit || limit > MaxHistoryLimit {
		s.log.Warn("Invalid history limit provided", map[string]interface{}{
			"limit": limit,
		})
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	logs, err := s.logs.List(ctx, limit)
	if err != nil {
		s.log.Error("Failed to query recommendation history", err, map[string]interface{}{
			"limit": limit,
		})
		return nil, fmt.Errorf("failed to query recommendation history: %w", err)
	}

	s.log.Debug("Recommendation history loaded", map[string]interface{}{
		"limit": limit,
		"count": len(logs),
	})

	return logs, nil
}
