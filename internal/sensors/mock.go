package sensors

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/agricure/api/internal/models"
)

// span is a half-open [lo, lo+width) range for generated values.
type span struct {
	lo, width float64
}

func (s span) draw(r *rand.Rand) float64 {
	return s.lo + r.Float64()*s.width
}

// Demo ranges, matching what the dashboard shows when no device is connected.
var (
	mockNitrogen    = span{40, 20}
	mockPhosphorus  = span{20, 15}
	mockPotassium   = span{140, 40}
	mockMoisture    = span{60, 20}
	mockTemperature = span{20, 10}
	mockHumidity    = span{65, 20}
	mockPH          = span{6.0, 2}
)

// MockFeed generates plausible random readings. It is safe for concurrent use.
type MockFeed struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMockFeed creates a MockFeed seeded from the wall clock.
func NewMockFeed() *MockFeed {
	seed := uint64(time.Now().UnixNano())
	return NewSeededMockFeed(seed, time.Now)
}

// NewSeededMockFeed creates a deterministic MockFeed for tests.
func NewSeededMockFeed(seed uint64, now func() time.Time) *MockFeed {
	return &MockFeed{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Latest implements Fetcher. It never fails.
func (m *MockFeed) Latest(_ context.Context) (models.SensorReading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return models.SensorReading{
		Timestamp:    m.now().UTC(),
		Source:       models.SourceMock,
		Nitrogen:     mockNitrogen.draw(m.rng),
		Phosphorus:   mockPhosphorus.draw(m.rng),
		Potassium:    mockPotassium.draw(m.rng),
		SoilPH:       mockPH.draw(m.rng),
		SoilMoisture: mockMoisture.draw(m.rng),
		Temperature:  mockTemperature.draw(m.rng),
		Humidity:     mockHumidity.draw(m.rng),
	}, nil
}

// History returns hours hourly chart points, oldest first, labelled
// "<n>h ago" down to "0h ago".
func (m *MockFeed) History(hours int) []models.HistoryPoint {
	m.mu.Lock()
	defer m.mu.Unlock()

	points := make([]models.HistoryPoint, 0, hours)
	for i := 0; i < hours; i++ {
		points = append(points, models.HistoryPoint{
			Time:        fmt.Sprintf("%dh ago", hours-1-i),
			Nitrogen:    mockNitrogen.draw(m.rng),
			Phosphorus:  mockPhosphorus.draw(m.rng),
			Potassium:   mockPotassium.draw(m.rng),
			Moisture:    mockMoisture.draw(m.rng),
			Temperature: mockTemperature.draw(m.rng),
			Humidity:    mockHumidity.draw(m.rng),
			PH:          mockPH.draw(m.rng),
		})
	}
	return points
}
