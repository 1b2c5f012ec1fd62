package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/agricure/api/internal/models"
)

// DemoFarms returns the dashboard's demo farms, updated relative to now.
func DemoFarms(now time.Time) []models.Farm {
	return []models.Farm{
		{ID: "1", Name: "North Field", Size: 5.2, Unit: models.UnitHectares, SoilHealth: 85, UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Name: "South Field", Size: 3.8, Unit: models.UnitHectares, SoilHealth: 78, UpdatedAt: now.Add(-4 * time.Hour)},
		{ID: "3", Name: "East Field", Size: 2.1, Unit: models.UnitHectares, SoilHealth: 92, UpdatedAt: now.Add(-1 * time.Hour)},
	}
}

// DemoLogs returns the dashboard's demo recommendation history.
func DemoLogs() []models.RecommendationLog {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	return []models.RecommendationLog{
		{
			ID: "1", FarmName: "North Field", PrimaryFertilizer: "NPK 20-10-10", SecondaryFertilizer: "Phosphate Rock",
			Status: models.LogApplied, CreatedAt: time.Date(2025, 1, 27, 14, 30, 0, 0, ist),
		},
		{
			ID: "2", FarmName: "South Field", PrimaryFertilizer: "Urea 46%", SecondaryFertilizer: "Compost",
			Status: models.LogPending, CreatedAt: time.Date(2025, 1, 26, 9, 15, 0, 0, ist),
		},
		{
			ID: "3", FarmName: "East Field", PrimaryFertilizer: "DAP 18-46-0", SecondaryFertilizer: "Bone Meal",
			Status: models.LogScheduled, CreatedAt: time.Date(2025, 1, 25, 16, 45, 0, 0, ist),
		},
	}
}

// MemoryFarmRepository is a FarmRepository held in memory.
type MemoryFarmRepository struct {
	mu    sync.RWMutex
	farms map[string]models.Farm
}

// NewMemoryFarmRepository creates a repository holding farms.
func NewMemoryFarmRepository(farms []models.Farm) *MemoryFarmRepository {
	r := &MemoryFarmRepository{farms: make(map[string]models.Farm, len(farms))}
	for _, f := range farms {
		r.farms[f.ID] = f
	}
	return r
}

// List implements FarmRepository.
func (r *MemoryFarmRepository) List(_ context.Context) ([]models.Farm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	farms := make([]models.Farm, 0, len(r.farms))
	for _, f := range r.farms {
		farms = append(farms, f)
	}
	sort.Slice(farms, func(i, j int) bool {
		if farms[i].Name != farms[j].Name {
			return farms[i].Name < farms[j].Name
		}
		return farms[i].ID < farms[j].ID
	})
	return farms, nil
}

// Save implements FarmRepository.
func (r *MemoryFarmRepository) Save(_ context.Context, farm *models.Farm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.farms[farm.ID] = *farm
	return nil
}

// MemoryLogRepository is a RecommendationLogRepository held in memory.
type MemoryLogRepository struct {
	mu   sync.RWMutex
	logs []models.RecommendationLog
}

// NewMemoryLogRepository creates a repository holding logs.
func NewMemoryLogRepository(logs []models.RecommendationLog) *MemoryLogRepository {
	return &MemoryLogRepository{logs: append([]models.RecommendationLog(nil), logs...)}
}

// List implements RecommendationLogRepository.
func (r *MemoryLogRepository) List(_ context.Context, limit int) ([]models.RecommendationLog, error) {
	r.mu.RLock()
	sorted := append([]models.RecommendationLog(nil), r.logs...)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []models.RecommendationLog{}
	}
	return sorted, nil
}

// Create implements RecommendationLogRepository.
func (r *MemoryLogRepository) Create(_ context.Context, log *models.RecommendationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, *log)
	return nil
}
