package models

import "time"

// Reading sources.
const (
	SourceThingSpeak = "thingspeak"
	SourceMock       = "mock"
)

// SensorReading is one snapshot of the field sensors. The live feed and the
// mock feed both produce this shape.
type SensorReading struct {
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	Nitrogen     float64   `json:"nitrogen"`
	Phosphorus   float64   `json:"phosphorus"`
	Potassium    float64   `json:"potassium"`
	SoilPH       float64   `json:"soilPH"`
	SoilMoisture float64   `json:"soilMoisture"`
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	Connected    bool      `json:"connected"`
}

// ParameterStatus grades a reading against its optimal range.
type ParameterStatus string

const (
	StatusOptimal  ParameterStatus = "optimal"
	StatusWarning  ParameterStatus = "warning"
	StatusCritical ParameterStatus = "critical"
)

// ParameterReport is one graded sensor parameter.
type ParameterReport struct {
	Name   string          `json:"name"`
	Unit   string          `json:"unit,omitempty"`
	Status ParameterStatus `json:"status"`
	Value  float64         `json:"value"`
	Min    float64         `json:"min"`
	Max    float64         `json:"max"`
}

// HistoryPoint is one hourly chart sample.
type HistoryPoint struct {
	Time        string  `json:"time"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
}

// SensorSnapshot is the latest reading with each parameter graded.
type SensorSnapshot struct {
	Reading     SensorReading     `json:"reading"`
	Parameters  []ParameterReport `json:"parameters"`
	HealthScore int               `json:"healthScore"`
}
