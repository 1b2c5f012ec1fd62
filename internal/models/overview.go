package models

import "time"

// Session identifies who is using the dashboard.
type Session struct {
	UserName  string `json:"userName"`
	IsDefault bool   `json:"isDefault"`
}

// Overview is the dashboard landing view.
type Overview struct {
	GeneratedAt   time.Time           `json:"generatedAt"`
	Sensor        SensorSnapshot      `json:"sensor"`
	Farms         []Farm              `json:"farms"`
	RecentLogs    []RecommendationLog `json:"recentLogs"`
	TotalHectares float64             `json:"totalHectares"`
}
