package domain

// GuidanceRecord is the structured care guide. It is the contract between
// the guidance generator and every downstream consumer: both the upstream
// parse path and the synthetic path must produce records satisfying the
// same shape (see ParseGuidanceRecord).
type GuidanceRecord struct {
	PlantOverview  PlantOverview   `json:"plant_overview"`
	GrowthStages   []GrowthStage   `json:"growth_stages"`
	DailyCare      DailyCare       `json:"daily_care"`
	CommonProblems []CommonProblem `json:"common_problems"`
	AdditionalTips []string        `json:"additional_tips"`
}

type PlantOverview struct {
	Description string `json:"description"`
	// IdealConditions is the canonical condition map. Upstream may send the
	// conditions as a loosely typed object; parsing coerces every value to a
	// string here so nothing downstream needs a dual access path.
	IdealConditions map[string]string `json:"ideal_conditions"`
	Benefits        []string          `json:"benefits"`
	DifficultyLevel string            `json:"difficulty_level"`
}

type GrowthStage struct {
	StageName        string   `json:"stage_name"`
	Duration         string   `json:"duration"`
	CareInstructions string   `json:"care_instructions"`
	KeyIndicators    []string `json:"key_indicators"`
}

type DailyCare struct {
	MorningRoutine   []string `json:"morning_routine"`
	AfternoonRoutine []string `json:"afternoon_routine"`
	EveningRoutine   []string `json:"evening_routine"`
	WeeklyTasks      []string `json:"weekly_tasks"`
}

type CommonProblem struct {
	Problem    string   `json:"problem"`
	Symptoms   []string `json:"symptoms"`
	Solution   string   `json:"solution"`
	Prevention string   `json:"prevention"`
}

// ArtifactReference points at a generated visual guide file. It represents,
// never owns, the underlying file.
type ArtifactReference struct {
	Status   string  `json:"status"` // success | mock | error
	FileURL  *string `json:"file_url"`
	FileType *string `json:"file_type"`
	Message  string  `json:"message"`
}

// GuideResponse is the terminal object returned to the caller.
type GuideResponse struct {
	Success           bool                   `json:"success"`
	PlantCareGuidance GuidanceRecord         `json:"plant_care_guidance"`
	VisualGuide       ArtifactReference      `json:"visual_guide"`
	Metadata          map[string]interface{} `json:"metadata"`
}
