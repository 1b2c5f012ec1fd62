package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/models"
	"github.com/agricure/api/internal/recommendation"
)

// Chart window constants
const (
	DefaultHistoryHours = 24
	MinHistoryHours     = 1
	MaxHistoryHours     = 168
)

// ErrInvalidHours is returned for an out-of-range chart window.
var ErrInvalidHours = errors.New("hours must be between 1 and 168")

// ReadingSource supplies the latest sensor reading. *sensors.Poller implements it.
type ReadingSource interface {
	Snapshot() (models.SensorReading, bool)
	Refresh(ctx context.Context) (models.SensorReading, error)
}

// HistorySource supplies hourly chart points. *sensors.MockFeed implements it.
type HistorySource interface {
	History(hours int) []models.HistoryPoint
}

// SensorService defines the interface for sensor read operations.
type SensorService interface {
	// Latest returns the most recent reading with graded parameters.
	// When nothing has been polled yet it fetches once.
	Latest(ctx context.Context) (*models.SensorSnapshot, error)

	// History returns hourly chart points for the last hours hours.
	// Returns ErrInvalidHours if hours is not between 1 and 168.
	History(hours int) ([]models.HistoryPoint, error)
}

type sensorService struct {
	readings ReadingSource
	history  HistorySource
	log      *logger.Logger
}

// NewSensorService creates a new instance of SensorService.
func NewSensorService(readings ReadingSource, history HistorySource, log *logger.Logger) SensorService {
	return &sensorService{
		readings: readings,
		history:  history,
		log:      log,
	}
}

func (s *sensorService) Latest(ctx context.Context) (*models.SensorSnapshot, error) {
	reading, ok := s.readings.Snapshot()
	if !ok {
		var err error
		reading, err = s.readings.Refresh(ctx)
		if err != nil {
			s.log.Error("Failed to fetch sensor reading", err, nil)
			return nil, fmt.Errorf("failed to fetch sensor reading: %w", err)
		}
	}

	return &models.SensorSnapshot{
		Reading:     reading,
		Parameters:  recommendation.GradeReading(reading),
		HealthScore: recommendation.HealthScore(reading),
	}, nil
}

func (s *sensorService) History(hours int) ([]models.HistoryPoint, error) {
	if hours < MinHistoryHours || hours > MaxHistoryHours {
		s.log.Warn("Invalid history window provided", map[string]interface{}{
			"hours": hours,
		})
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHours, hours)
	}
	return s.history.History(hours), nil
}
