package recommendation

import "github.com/agricure/api/internal/models"

// OptimalRange is the inclusive band a sensor parameter should sit in.
type OptimalRange struct {
	Name string
	Unit string
	Min  float64
	Max  float64
}

// Optimal ranges used to grade live readings, in display order.
var (
	NitrogenRange    = OptimalRange{Name: "nitrogen", Unit: "mg/kg", Min: 30, Max: 60}
	PhosphorusRange  = OptimalRange{Name: "phosphorus", Unit: "mg/kg", Min: 15, Max: 35}
	PotassiumRange   = OptimalRange{Name: "potassium", Unit: "ppm", Min: 120, Max: 180}
	PHRange          = OptimalRange{Name: "soilPH", Min: 6.0, Max: 7.5}
	MoistureRange    = OptimalRange{Name: "soilMoisture", Unit: "%", Min: 40, Max: 80}
	TemperatureRange = OptimalRange{Name: "temperature", Unit: "°C", Min: 15, Max: 35}
	HumidityRange    = OptimalRange{Name: "humidity", Unit: "%", Min: 50, Max: 80}
)

// GradeParameter grades value against [lo, hi]. Values more than 20%
// outside the band are critical.
func GradeParameter(value, lo, hi float64) models.ParameterStatus {
	switch {
	case value >= lo && value <= hi:
		return models.StatusOptimal
	case value < lo*0.8 || value > hi*1.2:
		return models.StatusCritical
	default:
		return models.StatusWarning
	}
}

// Grade grades a value against this range.
func (r OptimalRange) Grade(value float64) models.ParameterReport {
	return models.ParameterReport{
		Name:   r.Name,
		Unit:   r.Unit,
		Value:  value,
		Min:    r.Min,
		Max:    r.Max,
		Status: GradeParameter(value, r.Min, r.Max),
	}
}

// GradeReading grades every parameter of a reading.
func GradeReading(r models.SensorReading) []models.ParameterReport {
	return []models.ParameterReport{
		NitrogenRange.Grade(r.Nitrogen),
		PhosphorusRange.Grade(r.Phosphorus),
		PotassiumRange.Grade(r.Potassium),
		PHRange.Grade(r.SoilPH),
		MoistureRange.Grade(r.SoilMoisture),
		TemperatureRange.Grade(r.Temperature),
		HumidityRange.Grade(r.Humidity),
	}
}

// HealthScore rates soil health 0-100 from pH, N, P, K and moisture, each
// contributing 20 when good, 15 when fair and 5 otherwise.
func HealthScore(r models.SensorReading) int {
	score := tier(r.SoilPH >= 6.0 && r.SoilPH <= 7.5, r.SoilPH >= 5.5 && r.SoilPH <= 8.0)
	score += tier(r.Nitrogen >= 40, r.Nitrogen >= 20)
	score += tier(r.Phosphorus >= 20, r.Phosphorus >= 10)
	score += tier(r.Potassium >= 150, r.Potassium >= 100)
	score += tier(r.SoilMoisture >= 60 && r.SoilMoisture <= 80, r.SoilMoisture >= 40 && r.SoilMoisture <= 90)

	if score > 100 {
		return 100
	}
	return score
}

func tier(good, fair bool) int {
	switch {
	case good:
		return 20
	case fair:
		return 15
	default:
		return 5
	}
}
