package services

import (
	"math"
	"strings"
	"time"

	"github.com/yungbote/plantguide-backend/internal/domain"
)

// AssembleGuideResponse combines the pipeline outputs into the terminal
// response record. It never alters guidance or artifact content; insights
// are purely additive metadata.
func AssembleGuideResponse(
	profile domain.PlantProfile,
	guidance domain.GuidanceRecord,
	artifact domain.ArtifactReference,
	elapsed time.Duration,
) domain.GuideResponse {
	metadata := map[string]interface{}{
		"plant_name":              profile.PlantName,
		"plant_type":              profile.PlantType,
		"climate":                 profile.Climate,
		"sunlight_hours":          profile.SunlightHours,
		"soil_type":               profile.SoilType,
		"watering_frequency":      profile.WateringFrequency,
		"experience_level":        profile.ExperienceLevel,
		"timestamp":               time.Now().UTC().Format(time.RFC3339),
		"processing_time_seconds": roundSeconds(elapsed),
	}
	if insights := personalizedInsights(profile); len(insights) > 0 {
		metadata["personalized_insights"] = insights
	}

	return domain.GuideResponse{
		Success:           true,
		PlantCareGuidance: guidance,
		VisualGuide:       artifact,
		Metadata:          metadata,
	}
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// personalizedInsights derives short advisory notes from profile thresholds.
func personalizedInsights(profile domain.PlantProfile) []string {
	var insights []string

	if profile.SunlightHours < 4 {
		insights = append(insights, "Consider supplemental grow lights for low-light conditions")
	} else if profile.SunlightHours > 8 {
		insights = append(insights, "Monitor for sun stress during peak hours")
	}

	if strings.EqualFold(profile.ExperienceLevel, "beginner") {
		insights = append(insights,
			"Focus on establishing consistent care routines",
			"Keep a plant journal to track progress",
		)
	}

	switch strings.ToLower(profile.Climate) {
	case "tropical", "humid":
		insights = append(insights, "Ensure good air circulation to prevent fungal issues")
	case "arid", "dry":
		insights = append(insights, "Consider humidity trays or misting for moisture")
	}

	return insights
}
