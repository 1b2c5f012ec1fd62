package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/agricure/api/internal/logger"
	"github.com/agricure/api/internal/middleware"
	"github.com/agricure/api/internal/models"
)

// MockRecommendationService is a mock implementation of services.RecommendationService
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Generate(ctx context.Context, session models.Session, form models.FieldObservationForm) (*models.PlanResult, error) {
	args := m.Called(ctx, session, form)
	result, _ := args.Get(0).(*models.PlanResult)
	return result, args.Error(1)
}

func (m *MockRecommendationService) History(ctx context.Context, limit int) ([]models.RecommendationLog, error) {
	args := m.Called(ctx, limit)
	logs, _ := args.Get(0).([]models.RecommendationLog)
	return logs, args.Error(1)
}

// MockSensorService is a mock implementation of services.SensorService
type MockSensorService struct {
	mock.Mock
}

func (m *MockSensorService) Latest(ctx context.Context) (*models.SensorSnapshot, error) {
	args := m.Called(ctx)
	snapshot, _ := args.Get(0).(*models.SensorSnapshot)
	return snapshot, args.Error(1)
}

func (m *MockSensorService) History(hours int) ([]models.HistoryPoint, error) {
	args := m.Called(hours)
	points, _ := args.Get(0).([]models.HistoryPoint)
	return points, args.Error(1)
}

// MockOverviewService is a mock implementation of services.OverviewService
type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) Overview(ctx context.Context) (*models.Overview, error) {
	args := m.Called(ctx)
	overview, _ := args.Get(0).(*models.Overview)
	return overview, args.Error(1)
}

func (m *MockOverviewService) Farms(ctx context.Context) ([]models.Farm, error) {
	args := m.Called(ctx)
	farms, _ := args.Get(0).([]models.Farm)
	return farms, args.Error(1)
}

// setupAPIRouter creates a test router with the production middleware order.
func setupAPIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := logger.Nop()
	router.Use(middleware.RequestID())
	router.Use(middleware.Session("John Farmer"))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	return router
}
