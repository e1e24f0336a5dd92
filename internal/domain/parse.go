package domain

import (
	"encoding/json"
	"fmt"

	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
)

// Wire shapes use pointers so a missing key is distinguishable from a zero
// value. Validation is all-or-nothing: there is no partial construction.
type guidanceWire struct {
	PlantOverview  *overviewWire  `json:"plant_overview"`
	GrowthStages   *[]stageWire   `json:"growth_stages"`
	DailyCare      *dailyCareWire `json:"daily_care"`
	CommonProblems *[]problemWire `json:"common_problems"`
	AdditionalTips *[]string      `json:"additional_tips"`
}

type overviewWire struct {
	Description     *string                `json:"description"`
	IdealConditions map[string]interface{} `json:"ideal_conditions"`
	Benefits        *[]string              `json:"benefits"`
	DifficultyLevel *string                `json:"difficulty_level"`
}

type stageWire struct {
	StageName        *string   `json:"stage_name"`
	Duration         *string   `json:"duration"`
	CareInstructions *string   `json:"care_instructions"`
	KeyIndicators    *[]string `json:"key_indicators"`
}

type dailyCareWire struct {
	MorningRoutine   *[]string `json:"morning_routine"`
	AfternoonRoutine *[]string `json:"afternoon_routine"`
	EveningRoutine   *[]string `json:"evening_routine"`
	WeeklyTasks      *[]string `json:"weekly_tasks"`
}

type problemWire struct {
	Problem    *string   `json:"problem"`
	Symptoms   *[]string `json:"symptoms"`
	Solution   *string   `json:"solution"`
	Prevention *string   `json:"prevention"`
}

// ParseGuidanceRecord decodes raw JSON into a schema-checked GuidanceRecord.
// A JSON parse failure surfaces as upstream_payload_not_json; any missing or
// mis-shaped required field surfaces as schema_violation. The single tolerant
// read is the ideal-conditions object, whose values are coerced to strings
// at this boundary.
func ParseGuidanceRecord(data []byte) (GuidanceRecord, error) {
	var wire guidanceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return GuidanceRecord{}, apierr.UpstreamNotJSON(fmt.Errorf("parse guidance payload: %w", err))
	}

	if wire.PlantOverview == nil {
		return GuidanceRecord{}, schemaErr("plant_overview")
	}
	if wire.GrowthStages == nil {
		return GuidanceRecord{}, schemaErr("growth_stages")
	}
	if wire.DailyCare == nil {
		return GuidanceRecord{}, schemaErr("daily_care")
	}
	if wire.CommonProblems == nil {
		return GuidanceRecord{}, schemaErr("common_problems")
	}
	if wire.AdditionalTips == nil {
		return GuidanceRecord{}, schemaErr("additional_tips")
	}

	ov := wire.PlantOverview
	if ov.Description == nil {
		return GuidanceRecord{}, schemaErr("plant_overview.description")
	}
	if ov.IdealConditions == nil {
		return GuidanceRecord{}, schemaErr("plant_overview.ideal_conditions")
	}
	if ov.Benefits == nil {
		return GuidanceRecord{}, schemaErr("plant_overview.benefits")
	}
	if ov.DifficultyLevel == nil {
		return GuidanceRecord{}, schemaErr("plant_overview.difficulty_level")
	}

	if len(*wire.GrowthStages) == 0 {
		return GuidanceRecord{}, apierr.SchemaViolation(fmt.Errorf("growth_stages must contain at least one stage"))
	}
	stages := make([]GrowthStage, 0, len(*wire.GrowthStages))
	for i, st := range *wire.GrowthStages {
		if st.StageName == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("growth_stages[%d].stage_name", i))
		}
		if st.Duration == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("growth_stages[%d].duration", i))
		}
		if st.CareInstructions == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("growth_stages[%d].care_instructions", i))
		}
		if st.KeyIndicators == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("growth_stages[%d].key_indicators", i))
		}
		stages = append(stages, GrowthStage{
			StageName:        *st.StageName,
			Duration:         *st.Duration,
			CareInstructions: *st.CareInstructions,
			KeyIndicators:    nonNil(*st.KeyIndicators),
		})
	}

	dc := wire.DailyCare
	if dc.MorningRoutine == nil {
		return GuidanceRecord{}, schemaErr("daily_care.morning_routine")
	}
	if dc.AfternoonRoutine == nil {
		return GuidanceRecord{}, schemaErr("daily_care.afternoon_routine")
	}
	if dc.EveningRoutine == nil {
		return GuidanceRecord{}, schemaErr("daily_care.evening_routine")
	}
	if dc.WeeklyTasks == nil {
		return GuidanceRecord{}, schemaErr("daily_care.weekly_tasks")
	}

	problems := make([]CommonProblem, 0, len(*wire.CommonProblems))
	for i, p := range *wire.CommonProblems {
		if p.Problem == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("common_problems[%d].problem", i))
		}
		if p.Symptoms == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("common_problems[%d].symptoms", i))
		}
		if p.Solution == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("common_problems[%d].solution", i))
		}
		if p.Prevention == nil {
			return GuidanceRecord{}, schemaErr(fmt.Sprintf("common_problems[%d].prevention", i))
		}
		problems = append(problems, CommonProblem{
			Problem:    *p.Problem,
			Symptoms:   nonNil(*p.Symptoms),
			Solution:   *p.Solution,
			Prevention: *p.Prevention,
		})
	}

	return GuidanceRecord{
		PlantOverview: PlantOverview{
			Description:     *ov.Description,
			IdealConditions: coerceConditions(ov.IdealConditions),
			Benefits:        nonNil(*ov.Benefits),
			DifficultyLevel: *ov.DifficultyLevel,
		},
		GrowthStages: stages,
		DailyCare: DailyCare{
			MorningRoutine:   nonNil(*dc.MorningRoutine),
			AfternoonRoutine: nonNil(*dc.AfternoonRoutine),
			EveningRoutine:   nonNil(*dc.EveningRoutine),
			WeeklyTasks:      nonNil(*dc.WeeklyTasks),
		},
		CommonProblems: problems,
		AdditionalTips: nonNil(*wire.AdditionalTips),
	}, nil
}

func schemaErr(field string) error {
	return apierr.SchemaViolation(fmt.Errorf("guidance payload missing required field %q", field))
}

func coerceConditions(raw map[string]interface{}) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			out[k] = t
		case nil:
			// dropped: section rendering substitutes "Not specified"
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
