package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agricure/api/internal/models"
)

// MockLogRepository is a mock implementation of RecommendationLogRepository for testing
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) List(ctx context.Context, limit int) ([]models.RecommendationLog, error) {
	args := m.Called(ctx, limit)
	logs, _ := args.Get(0).([]models.RecommendationLog)
	return logs, args.Error(1)
}

func (m *MockLogRepository) Create(ctx context.Context, log *models.RecommendationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// MockFarmRepository is a mock implementation of FarmRepository for testing
type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) List(ctx context.Context) ([]models.Farm, error) {
	args := m.Called(ctx)
	farms, _ := args.Get(0).([]models.Farm)
	return farms, args.Error(1)
}

func (m *MockFarmRepository) Save(ctx context.Context, farm *models.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

// MockReadingSource is a mock implementation of ReadingSource for testing
type MockReadingSource struct {
	mock.Mock
}

func (m *MockReadingSource) Snapshot() (models.SensorReading, bool) {
	args := m.Called()
	return args.Get(0).(models.SensorReading), args.Bool(1)
}

func (m *MockReadingSource) Refresh(ctx context.Context) (models.SensorReading, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.SensorReading), args.Error(1)
}

// stubHistory returns hours zero-valued points.
type stubHistory struct{}

func (stubHistory) History(hours int) []models.HistoryPoint {
	return make([]models.HistoryPoint, hours)
}

func healthyReading() models.SensorReading {
	return models.SensorReading{
		Source:       models.SourceMock,
		Nitrogen:     45,
		Phosphorus:   25,
		Potassium:    150,
		SoilPH:       6.8,
		SoilMoisture: 60,
		Temperature:  25,
		Humidity:     65,
	}
}
