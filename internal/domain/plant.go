package domain

import (
	"fmt"
	"strings"

	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
)

const (
	MaxPlantNameLen = 100
	MaxFieldLen     = 50
	MinSunlightHrs  = 0
	MaxSunlightHrs  = 24
)

// PlantProfile is the validated description of a growing scenario. It is
// built once per request by NewPlantProfile and never mutated afterwards.
type PlantProfile struct {
	PlantName         string `json:"plant_name"`
	PlantType         string `json:"plant_type"`
	Climate           string `json:"climate"`
	SunlightHours     int    `json:"sunlight_hours"`
	SoilType          string `json:"soil_type"`
	WateringFrequency string `json:"watering_frequency"`
	ExperienceLevel   string `json:"experience_level"`
}

// NewPlantProfile trims every text field and bounds-checks the result.
// Beyond trimming, field values pass through verbatim: they are echoed into
// prompts and response metadata exactly as the caller wrote them.
func NewPlantProfile(in PlantProfile) (PlantProfile, error) {
	out := PlantProfile{
		PlantName:         strings.TrimSpace(in.PlantName),
		PlantType:         strings.TrimSpace(in.PlantType),
		Climate:           strings.TrimSpace(in.Climate),
		SunlightHours:     in.SunlightHours,
		SoilType:          strings.TrimSpace(in.SoilType),
		WateringFrequency: strings.TrimSpace(in.WateringFrequency),
		ExperienceLevel:   strings.TrimSpace(in.ExperienceLevel),
	}

	checks := []struct {
		field string
		value string
		max   int
	}{
		{"plant_name", out.PlantName, MaxPlantNameLen},
		{"plant_type", out.PlantType, MaxFieldLen},
		{"climate", out.Climate, MaxFieldLen},
		{"soil_type", out.SoilType, MaxFieldLen},
		{"watering_frequency", out.WateringFrequency, MaxFieldLen},
		{"experience_level", out.ExperienceLevel, MaxFieldLen},
	}
	for _, c := range checks {
		if c.value == "" {
			return PlantProfile{}, apierr.Validation(fmt.Errorf("%s must not be empty", c.field))
		}
		if len(c.value) > c.max {
			return PlantProfile{}, apierr.Validation(fmt.Errorf("%s must be at most %d characters", c.field, c.max))
		}
	}
	if out.SunlightHours < MinSunlightHrs || out.SunlightHours > MaxSunlightHrs {
		return PlantProfile{}, apierr.Validation(fmt.Errorf("sunlight_hours must be between %d and %d", MinSunlightHrs, MaxSunlightHrs))
	}
	return out, nil
}
