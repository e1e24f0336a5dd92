package services

import (
	"fmt"

	"github.com/yungbote/plantguide-backend/internal/domain"
)

// This file holds the prompt text sent to the generation service. Editing
// the constants here changes the upstream contract, so keep the skeleton in
// sync with domain.ParseGuidanceRecord.

// guideSchemaSkeleton is embedded verbatim in the prompt so the model is
// constrained to the exact shape the parser accepts.
const guideSchemaSkeleton = `{
  "plant_overview": {
    "description": "Detailed description of the plant (2-3 sentences)",
    "ideal_conditions": {
      "temperature": "Temperature range",
      "humidity": "Humidity percentage",
      "sunlight": "Sunlight requirements",
      "soil_ph": "Ideal pH range"
    },
    "benefits": ["Benefit 1", "Benefit 2", "Benefit 3"],
    "difficulty_level": "Beginner/Intermediate/Advanced"
  },
  "growth_stages": [
    {
      "stage_name": "Germination/Seedling/etc.",
      "duration": "Time period",
      "care_instructions": "Specific care during this stage",
      "key_indicators": ["Indicator 1", "Indicator 2"]
    }
  ],
  "daily_care": {
    "morning_routine": ["Task 1", "Task 2"],
    "afternoon_routine": ["Task 1", "Task 2"],
    "evening_routine": ["Task 1", "Task 2"],
    "weekly_tasks": ["Task 1", "Task 2", "Task 3"]
  },
  "common_problems": [
    {
      "problem": "Problem name",
      "symptoms": ["Symptom 1", "Symptom 2"],
      "solution": "Detailed solution",
      "prevention": "Prevention tips"
    }
  ],
  "additional_tips": ["Tip 1", "Tip 2", "Tip 3"]
}`

const guidePromptTemplate = `You are an expert botanist and plant care specialist. Based on the following plant information,
provide comprehensive care guidance in strict JSON format.

Plant Information:
- Name: %s
- Type: %s
- Climate: %s
- Daily Sunlight: %d hours
- Soil Type: %s
- Current Watering Frequency: %s
- Gardener Experience Level: %s

Provide a detailed plant care guide with the following structure (respond ONLY with valid JSON, no markdown):

%s

Tailor the advice to the gardener's experience level: %s.
Include at least 3-4 growth stages, 4-5 common problems, and 5-7 additional tips.
Respond with ONLY the JSON object, no additional text or markdown formatting.`

// BuildGuidePrompt renders a profile into the generation instruction. Pure
// and deterministic: the same profile always yields byte-identical output.
func BuildGuidePrompt(profile domain.PlantProfile) string {
	return fmt.Sprintf(guidePromptTemplate,
		profile.PlantName,
		profile.PlantType,
		profile.Climate,
		profile.SunlightHours,
		profile.SoilType,
		profile.WateringFrequency,
		profile.ExperienceLevel,
		guideSchemaSkeleton,
		profile.ExperienceLevel,
	)
}
