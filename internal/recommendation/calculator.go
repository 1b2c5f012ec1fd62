// Package recommendation turns a validated field observation into a
// fertilizer plan. Everything here is a pure function of its input.
package recommendation

import (
	"fmt"
	"math"
	"strings"

	"github.com/agricure/api/internal/models"
)

// Area conversion factors to hectares.
const (
	AcresToHectares = 0.404686
	BighaToHectares = 0.1338
)

// Soil thresholds.
const (
	AcidicBelowPH     = 6.0
	AlkalineAbovePH   = 7.5
	LowMoistureBelow  = 40.0
	HighMoistureAbove = 80.0

	NitrogenDeficientBelow   = 30.0
	PhosphorusDeficientBelow = 15.0
	PotassiumDeficientBelow  = 120.0
)

// Cost per hectare in rupees.
const (
	PrimaryCostPerHectare   = 3750
	SecondaryCostPerHectare = 2500
	OrganicCostPerHectare   = 2000
)

// Nutrient names as they appear in the deficiency list.
const (
	Nitrogen   = "Nitrogen"
	Phosphorus = "Phosphorus"
	Potassium  = "Potassium"
)

type fertilizer struct {
	name              string
	reason            string
	applicationMethod string
	ratePerHectare    float64
}

type cropProgram struct {
	primary   fertilizer
	secondary fertilizer
}

var cropPrograms = map[models.CropType]cropProgram{
	models.CropRice: {
		primary: fertilizer{
			name:              "NPK 20-10-10",
			ratePerHectare:    120,
			reason:            "Rice requires high nitrogen for tillering and grain filling",
			applicationMethod: "Split application: 50% at transplanting, 25% at tillering, 25% at panicle initiation",
		},
		secondary: fertilizer{
			name:              "Zinc Sulphate",
			ratePerHectare:    25,
			reason:            "Zinc deficiency is common in rice, especially in alkaline soils",
			applicationMethod: "Apply as basal dose before transplanting",
		},
	},
	models.CropWheat: {
		primary: fertilizer{
			name:              "DAP 18-46-0",
			ratePerHectare:    100,
			reason:            "Wheat needs phosphorus for root development and grain formation",
			applicationMethod: "Apply as basal dose at sowing time",
		},
		secondary: fertilizer{
			name:              "Urea 46%",
			ratePerHectare:    80,
			reason:            "Additional nitrogen for vegetative growth and protein content",
			applicationMethod: "Split application: 50% at sowing, 50% at crown root initiation",
		},
	},
}

// generalProgram applies to every crop without a dedicated program.
var generalProgram = cropProgram{
	primary: fertilizer{
		name:              "NPK 19-19-19",
		ratePerHectare:    100,
		reason:            "Balanced nutrition for general crop requirements",
		applicationMethod: "Apply as basal dose and top dressing as needed",
	},
	secondary: fertilizer{
		name:              "Organic Compost",
		ratePerHectare:    2000,
		reason:            "Improves soil structure and provides slow-release nutrients",
		applicationMethod: "Apply 2-3 weeks before planting and incorporate into soil",
	},
}

type organicAmendment struct {
	name           string
	benefits       string
	timing         string
	ratePerHectare float64
}

// organicAmendments are offered on every plan, in this order.
var organicAmendments = []organicAmendment{
	{
		name:           "Vermicompost",
		ratePerHectare: 1000,
		benefits:       "Rich in nutrients, improves soil structure and water retention",
		timing:         "Apply 3-4 weeks before planting",
	},
	{
		name:           "Neem Cake",
		ratePerHectare: 200,
		benefits:       "Natural pest deterrent and slow-release nitrogen source",
		timing:         "Apply at the time of land preparation",
	},
	{
		name:           "Bone Meal",
		ratePerHectare: 150,
		benefits:       "Excellent source of phosphorus and calcium",
		timing:         "Apply as basal dose before sowing",
	},
}

var defaultTiming = models.ApplicationTiming{
	Primary:   "Apply 1-2 weeks before planting for optimal nutrient availability",
	Secondary: "Apply during active growth phase or as recommended for specific fertilizer",
	Organic:   "Apply 3-4 weeks before planting to allow decomposition",
}

// ConvertToHectares converts a field size to hectares. Unknown units are
// treated as hectares.
func ConvertToHectares(size float64, unit models.SizeUnit) float64 {
	switch unit {
	case models.UnitAcres:
		return size * AcresToHectares
	case models.UnitBigha:
		return size * BighaToHectares
	default:
		return size
	}
}

// ClassifyPH grades soil pH. The optimal band is inclusive at both ends.
func ClassifyPH(pH float64) models.PHStatus {
	switch {
	case pH < AcidicBelowPH:
		return models.PHAcidic
	case pH > AlkalineAbovePH:
		return models.PHAlkaline
	default:
		return models.PHOptimal
	}
}

// ClassifyMoisture grades soil moisture percent.
func ClassifyMoisture(moisture float64) models.MoistureStatus {
	switch {
	case moisture < LowMoistureBelow:
		return models.MoistureLow
	case moisture > HighMoistureAbove:
		return models.MoistureHigh
	default:
		return models.MoistureOptimal
	}
}

// Deficiencies lists deficient nutrients, always in N, P, K order.
// An empty slice means nutrient levels are adequate.
func Deficiencies(nitrogen, phosphorus, potassium float64) []string {
	deficient := make([]string, 0, 3)
	if nitrogen < NitrogenDeficientBelow {
		deficient = append(deficient, Nitrogen)
	}
	if phosphorus < PhosphorusDeficientBelow {
		deficient = append(deficient, Phosphorus)
	}
	if potassium < PotassiumDeficientBelow {
		deficient = append(deficient, Potassium)
	}
	return deficient
}

// ComputePlan builds the fertilizer plan for an observation. Every mass and
// cost is a per-hectare rate times the field area in hectares, rounded to a
// whole unit.
func ComputePlan(obs models.FieldObservation) models.FertilizerPlan {
	hectares := ConvertToHectares(obs.FieldSize, obs.SizeUnit)

	phStatus := ClassifyPH(obs.SoilPH)
	moistureStatus := ClassifyMoisture(obs.SoilMoisture)
	deficient := Deficiencies(obs.Nitrogen, obs.Phosphorus, obs.Potassium)

	program, ok := cropPrograms[obs.CropType]
	if !ok {
		program = generalProgram
	}

	organic := make([]models.OrganicOption, 0, len(organicAmendments))
	for _, a := range organicAmendments {
		organic = append(organic, models.OrganicOption{
			Name:              a.name,
			Amount:            formatKg(a.ratePerHectare, hectares),
			Benefits:          a.benefits,
			ApplicationTiming: a.timing,
		})
	}

	return models.FertilizerPlan{
		PrimaryFertilizer:   program.primary.recommend(hectares),
		SecondaryFertilizer: program.secondary.recommend(hectares),
		OrganicOptions:      organic,
		ApplicationTiming:   defaultTiming,
		CostEstimate:        estimateCost(hectares),
		SoilConditionAnalysis: models.SoilDiagnosis{
			PHStatus:           phStatus,
			NutrientDeficiency: deficient,
			MoistureStatus:     moistureStatus,
			Recommendations:    advise(phStatus, moistureStatus, deficient),
		},
		Hectares: hectares,
	}
}

func (f fertilizer) recommend(hectares float64) models.FertilizerRecommendation {
	return models.FertilizerRecommendation{
		Name:              f.name,
		Amount:            formatKg(f.ratePerHectare, hectares),
		Reason:            f.reason,
		ApplicationMethod: f.applicationMethod,
	}
}

func estimateCost(hectares float64) models.CostEstimate {
	primary := scale(PrimaryCostPerHectare, hectares)
	secondary := scale(SecondaryCostPerHectare, hectares)
	organic := scale(OrganicCostPerHectare, hectares)
	total := primary + secondary + organic

	return models.CostEstimate{
		Primary:      FormatINR(primary),
		Secondary:    FormatINR(secondary),
		Organic:      FormatINR(organic),
		Total:        FormatINR(total),
		PrimaryINR:   primary,
		SecondaryINR: secondary,
		OrganicINR:   organic,
		TotalINR:     total,
	}
}

func advise(ph models.PHStatus, moisture models.MoistureStatus, deficient []string) []string {
	lines := make([]string, 0, 5)

	switch ph {
	case models.PHAcidic:
		lines = append(lines, "Adjust soil pH using lime")
	case models.PHAlkaline:
		lines = append(lines, "Adjust soil pH using sulfur")
	default:
		lines = append(lines, "Maintain current pH levels")
	}

	switch moisture {
	case models.MoistureLow:
		lines = append(lines, "Increase irrigation frequency")
	case models.MoistureHigh:
		lines = append(lines, "Improve drainage")
	default:
		lines = append(lines, "Maintain current moisture levels")
	}

	if len(deficient) > 0 {
		lines = append(lines, fmt.Sprintf("Address %s deficiency", strings.Join(deficient, ", ")))
	} else {
		lines = append(lines, "Nutrient levels are adequate")
	}

	return append(lines,
		"Regular soil testing every 6 months is recommended",
		"Consider crop rotation to maintain soil health",
	)
}

func scale(ratePerHectare, hectares float64) int64 {
	return int64(math.Round(ratePerHectare * hectares))
}

func formatKg(ratePerHectare, hectares float64) string {
	return fmt.Sprintf("%d kg", scale(ratePerHectare, hectares))
}
