package models

import "time"

// PHStatus classifies soil pH.
type PHStatus string

const (
	PHAcidic   PHStatus = "Acidic"
	PHOptimal  PHStatus = "Optimal"
	PHAlkaline PHStatus = "Alkaline"
)

// MoistureStatus classifies soil moisture.
type MoistureStatus string

const (
	MoistureLow     MoistureStatus = "Low"
	MoistureOptimal MoistureStatus = "Optimal"
	MoistureHigh    MoistureStatus = "High"
)

// FertilizerRecommendation is a chemical fertilizer sized for a field.
type FertilizerRecommendation struct {
	Name              string `json:"name"`
	Amount            string `json:"amount"`
	Reason            string `json:"reason"`
	ApplicationMethod string `json:"applicationMethod"`
}

// OrganicOption is an organic amendment sized for a field.
type OrganicOption struct {
	Name              string `json:"name"`
	Amount            string `json:"amount"`
	Benefits          string `json:"benefits"`
	ApplicationTiming string `json:"applicationTiming"`
}

// ApplicationTiming holds when each fertilizer category should be applied.
type ApplicationTiming struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Organic   string `json:"organic"`
}

// CostEstimate carries the formatted per-category and total cost together
// with the whole-rupee values they were formatted from.
type CostEstimate struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Organic      string `json:"organic"`
	Total        string `json:"total"`
	PrimaryINR   int64  `json:"primaryInr"`
	SecondaryINR int64  `json:"secondaryInr"`
	OrganicINR   int64  `json:"organicInr"`
	TotalINR     int64  `json:"totalInr"`
}

// SoilDiagnosis is the soil-condition part of a plan.
type SoilDiagnosis struct {
	PHStatus           PHStatus       `json:"phStatus"`
	NutrientDeficiency []string       `json:"nutrientDeficiency"`
	MoistureStatus     MoistureStatus `json:"moistureStatus"`
	Recommendations    []string       `json:"recommendations"`
}

// FertilizerPlan is the complete output for one submitted observation.
type FertilizerPlan struct {
	PrimaryFertilizer     FertilizerRecommendation `json:"primaryFertilizer"`
	SecondaryFertilizer   FertilizerRecommendation `json:"secondaryFertilizer"`
	OrganicOptions        []OrganicOption          `json:"organicOptions"`
	ApplicationTiming     ApplicationTiming        `json:"applicationTiming"`
	CostEstimate          CostEstimate             `json:"costEstimate"`
	SoilConditionAnalysis SoilDiagnosis            `json:"soilConditionAnalysis"`
	Hectares              float64                  `json:"hectares"`
}

// PlanResult is what the API returns for a submission: the plan, the
// observation it was computed from, and when.
type PlanResult struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Plan        FertilizerPlan   `json:"recommendations"`
	Observation FieldObservation `json:"formData"`
	LogID       string           `json:"logId,omitempty"`
}
