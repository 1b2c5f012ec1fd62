package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agricure/api/internal/models"
)

func TestSeedDemoData_FillsEmptyStores(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 27, 12, 0, 0, 0, time.UTC)
	farms := NewMemoryFarmRepository(nil)
	logs := NewMemoryLogRepository(nil)

	require.NoError(t, SeedDemoData(ctx, farms, logs, now))

	seededFarms, err := farms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seededFarms, len(DemoFarms(now)))

	seededLogs, err := logs.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, seededLogs, len(DemoLogs()))
	assert.Equal(t, "North Field", seededLogs[0].FarmName)
}

func TestSeedDemoData_LeavesPopulatedStoresAlone(t *testing.T) {
	ctx := context.Background()
	farms := NewMemoryFarmRepository([]models.Farm{{ID: "own", Name: "Own Field", Size: 1, Unit: models.UnitHectares}})
	logs := NewMemoryLogRepository([]models.RecommendationLog{{ID: "own", FarmName: "Own Field", Status: models.LogPending, CreatedAt: time.Now()}})

	require.NoError(t, SeedDemoData(ctx, farms, logs, time.Now()))

	gotFarms, err := farms.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotFarms, 1)
	assert.Equal(t, "own", gotFarms[0].ID)

	gotLogs, err := logs.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, gotLogs, 1)
	assert.Equal(t, "own", gotLogs[0].ID)
}

func TestSeedDemoData_SeedsLogsWhenOnlyFarmsExist(t *testing.T) {
	ctx := context.Background()
	farms := NewMemoryFarmRepository(DemoFarms(time.Now()))
	logs := NewMemoryLogRepository(nil)

	require.NoError(t, SeedDemoData(ctx, farms, logs, time.Now()))

	gotLogs, err := logs.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, gotLogs, len(DemoLogs()))
}

type failingFarmRepository struct{}

func (failingFarmRepository) List(context.Context) ([]models.Farm, error) {
	return nil, errors.New("connection refused")
}

func (failingFarmRepository) Save(context.Context, *models.Farm) error { return nil }

func TestSeedDemoData_ReturnsListError(t *testing.T) {
	logs := NewMemoryLogRepository(nil)

	err := SeedDemoData(context.Background(), failingFarmRepository{}, logs, time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	gotLogs, listErr := logs.List(context.Background(), 10)
	require.NoError(t, listErr)
	assert.Empty(t, gotLogs)
}
