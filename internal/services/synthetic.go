package services

import (
	"fmt"
	"strings"

	"github.com/yungbote/plantguide-backend/internal/domain"
)

// BuildSyntheticGuidance derives a complete guidance record from the profile
// alone. It is the degraded mode used when no upstream credential is
// configured: no network I/O, fully deterministic, and it must satisfy the
// same schema the upstream parse path enforces.
func BuildSyntheticGuidance(profile domain.PlantProfile) domain.GuidanceRecord {
	return domain.GuidanceRecord{
		PlantOverview: domain.PlantOverview{
			Description: fmt.Sprintf(
				"%s is a wonderful %s that thrives in %s climates. It's well-suited for gardeners of all levels and provides both aesthetic beauty and practical benefits.",
				profile.PlantName, strings.ToLower(profile.PlantType), strings.ToLower(profile.Climate)),
			IdealConditions: map[string]string{
				"temperature": "18-24°C (64-75°F)",
				"humidity":    "40-60%",
				"sunlight":    fmt.Sprintf("%d hours of direct sunlight daily", profile.SunlightHours),
				"soil_ph":     "6.0-7.0",
			},
			Benefits: []string{
				"Improves air quality",
				"Adds natural beauty to your space",
				"Provides fresh produce/flowers",
			},
			DifficultyLevel: profile.ExperienceLevel,
		},
		GrowthStages: []domain.GrowthStage{
			{
				StageName:        "Germination",
				Duration:         "7-14 days",
				CareInstructions: "Keep soil moist but not waterlogged. Maintain warm temperature around 20-25°C.",
				KeyIndicators:    []string{"First leaves emerging", "Seed coat splitting", "Root development visible"},
			},
			{
				StageName:        "Seedling",
				Duration:         "2-4 weeks",
				CareInstructions: "Provide adequate light and maintain consistent moisture. Begin gentle fertilization.",
				KeyIndicators:    []string{"True leaves developing", "Strong stem growth", "Established root system"},
			},
			{
				StageName:        "Vegetative Growth",
				Duration:         "4-8 weeks",
				CareInstructions: "Increase watering as plant grows. Provide full sunlight and regular feeding.",
				KeyIndicators:    []string{"Rapid leaf production", "Stem thickening", "Branching development"},
			},
			{
				StageName:        "Maturity",
				Duration:         "Ongoing",
				CareInstructions: "Maintain regular care routine. Monitor for pests and diseases. Harvest as appropriate.",
				KeyIndicators:    []string{"Full size reached", "Flowering/fruiting", "Strong established growth"},
			},
		},
		DailyCare: domain.DailyCare{
			MorningRoutine: []string{
				"Check soil moisture level",
				"Water if soil is dry to touch",
				"Inspect leaves for pests or disease",
				"Remove any dead or yellowing leaves",
			},
			AfternoonRoutine: []string{
				"Ensure adequate sunlight exposure",
				"Rotate plant for even light distribution",
				"Check temperature conditions",
			},
			EveningRoutine: []string{
				"Mist leaves if humidity is low",
				"Check for any changes in plant health",
				"Prepare for next day's care",
			},
			WeeklyTasks: []string{
				"Apply balanced fertilizer",
				"Prune dead or damaged growth",
				"Check and adjust support structures",
				"Deep water to flush soil",
				"Inspect root health through drainage holes",
			},
		},
		CommonProblems: []domain.CommonProblem{
			{
				Problem:    "Yellowing Leaves",
				Symptoms:   []string{"Lower leaves turning yellow", "Slow growth", "Pale coloration"},
				Solution:   "Check watering schedule and adjust. May indicate overwatering or nitrogen deficiency. Ensure proper drainage.",
				Prevention: "Water only when top inch of soil is dry. Use well-draining soil mix. Fertilize regularly during growing season.",
			},
			{
				Problem:    "Pest Infestation",
				Symptoms:   []string{"Visible insects on leaves", "Sticky residue", "Damaged or eaten foliage"},
				Solution:   "Spray with neem oil solution or insecticidal soap. Remove heavily infested leaves. Isolate plant if necessary.",
				Prevention: "Regular inspection of plants. Maintain good air circulation. Keep growing area clean. Quarantine new plants.",
			},
			{
				Problem:    "Root Rot",
				Symptoms:   []string{"Wilting despite wet soil", "Brown mushy roots", "Foul odor from soil"},
				Solution:   "Remove plant from pot, trim affected roots, repot in fresh soil with better drainage. Reduce watering frequency.",
				Prevention: "Use pots with drainage holes. Don't overwater. Ensure soil has good drainage. Allow soil to dry between waterings.",
			},
			{
				Problem:    "Stunted Growth",
				Symptoms:   []string{"Little to no new growth", "Small leaf size", "Weak stems"},
				Solution:   "Check light levels and increase if needed. Apply appropriate fertilizer. Check for root-bound conditions.",
				Prevention: "Provide adequate light. Feed regularly during growing season. Repot when roots fill container. Maintain proper temperature.",
			},
		},
		AdditionalTips: []string{
			fmt.Sprintf("Adjust watering based on %s climate conditions - less in humid weather, more in dry conditions", profile.Climate),
			fmt.Sprintf("Given your %s experience level, start with consistent routines and keep a plant journal", strings.ToLower(profile.ExperienceLevel)),
			fmt.Sprintf("The %s soil is good, but consider adding compost for nutrients", strings.ToLower(profile.SoilType)),
			"Group plants with similar needs together for easier care",
			"Use room-temperature water to avoid shocking the roots",
			"Consider using mulch to retain moisture and regulate soil temperature",
			"Take photos weekly to track growth progress and spot problems early",
		},
	}
}
