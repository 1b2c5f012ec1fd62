package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agricure/api/internal/models"
)

func TestGradeParameter(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  models.ParameterStatus
	}{
		{name: "at minimum", value: 30, want: models.StatusOptimal},
		{name: "at maximum", value: 60, want: models.StatusOptimal},
		{name: "slightly low", value: 25, want: models.StatusWarning},
		{name: "just above critical", value: 24.5, want: models.StatusWarning},
		{name: "far too low", value: 23.9, want: models.StatusCritical},
		{name: "slightly high", value: 70, want: models.StatusWarning},
		{name: "far too high", value: 72.1, want: models.StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeParameter(tt.value, 30, 60))
		})
	}
}

func TestGradeReading(t *testing.T) {
	reports := GradeReading(models.SensorReading{
		Nitrogen:     45,
		Phosphorus:   10,
		Potassium:    150,
		SoilPH:       6.8,
		SoilMoisture: 20,
		Temperature:  25,
		Humidity:     70,
	})

	require.Len(t, reports, 7)
	assert.Equal(t, "nitrogen", reports[0].Name)
	assert.Equal(t, models.StatusOptimal, reports[0].Status)
	assert.Equal(t, "phosphorus", reports[1].Name)
	assert.Equal(t, models.StatusCritical, reports[1].Status)
	assert.Equal(t, "soilMoisture", reports[4].Name)
	assert.Equal(t, models.StatusCritical, reports[4].Status)
	assert.Equal(t, "%", reports[4].Unit)
	assert.Equal(t, "humidity", reports[6].Name)
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name    string
		reading models.SensorReading
		want    int
	}{
		{
			name:    "all good",
			reading: models.SensorReading{SoilPH: 6.5, Nitrogen: 45, Phosphorus: 25, Potassium: 160, SoilMoisture: 70},
			want:    100,
		},
		{
			name:    "all fair",
			reading: models.SensorReading{SoilPH: 5.6, Nitrogen: 25, Phosphorus: 12, Potassium: 110, SoilMoisture: 85},
			want:    75,
		},
		{
			name:    "all poor",
			reading: models.SensorReading{SoilPH: 4.0, Nitrogen: 5, Phosphorus: 2, Potassium: 50, SoilMoisture: 10},
			want:    25,
		},
		{
			name:    "mixed",
			reading: models.SensorReading{SoilPH: 7.0, Nitrogen: 10, Phosphorus: 20, Potassium: 100, SoilMoisture: 95},
			want:    20 + 5 + 20 + 15 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.reading))
		})
	}
}
