package models

import (
	"time"
)

// Farm is a managed field shown on the dashboard overview.
type Farm struct {
	UpdatedAt  time.Time `json:"lastUpdated"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Unit       SizeUnit  `json:"unit"`
	Size       float64   `json:"size"`
	SoilHealth int       `json:"soilHealth"`
}

// LogStatus is where a recommendation stands in its application lifecycle.
type LogStatus string

const (
	LogApplied   LogStatus = "applied"
	LogPending   LogStatus = "pending"
	LogScheduled LogStatus = "scheduled"
)

// RecommendationLog is a history entry for a generated plan.
type RecommendationLog struct {
	CreatedAt           time.Time `json:"timestamp"`
	ID                  string    `json:"id"`
	FarmName            string    `json:"farmName"`
	CropType            CropType  `json:"cropType,omitempty"`
	PrimaryFertilizer   string    `json:"primaryFertilizer"`
	SecondaryFertilizer string    `json:"secondaryFertilizer"`
	Status              LogStatus `json:"status"`
	TotalINR            int64     `json:"totalInr,omitempty"`
}
