package services

import (
	"fmt"
	"strings"

	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/render"
)

// Condition rows render in a fixed order regardless of map iteration order.
var conditionOrder = []struct {
	key   string
	label string
}{
	{"temperature", "Temperature"},
	{"humidity", "Humidity"},
	{"sunlight", "Sunlight"},
	{"soil_ph", "Soil pH"},
}

// BuildGuideSections maps a guidance record into the ordered document
// sections of the visual guide: title, overview, conditions, one per growth
// stage, daily care, one per problem, tips. The mapping is deterministic and
// order-preserving, so the section count is always
// 3 + len(stages) + 1 + len(problems) + 1.
//
// Weekly tasks are not rendered into the daily-care section. That mirrors
// the behavior of the legacy guide generator; see DESIGN.md before changing
// it.
func BuildGuideSections(g domain.GuidanceRecord, plantName string) []render.Section {
	sections := make([]render.Section, 0, 5+len(g.GrowthStages)+len(g.CommonProblems))

	sections = append(sections, render.Section{
		Title: fmt.Sprintf("%s Care Guide", plantName),
		Body:  fmt.Sprintf("Difficulty: %s", g.PlantOverview.DifficultyLevel),
	})

	sections = append(sections, render.Section{
		Title: "Plant Overview",
		Body:  g.PlantOverview.Description,
	})

	var cond strings.Builder
	for i, c := range conditionOrder {
		value, ok := g.PlantOverview.IdealConditions[c.key]
		if !ok || strings.TrimSpace(value) == "" {
			value = "Not specified"
		}
		if i > 0 {
			cond.WriteString("\n")
		}
		cond.WriteString(fmt.Sprintf("%s: %s", c.label, value))
	}
	sections = append(sections, render.Section{
		Title: "Ideal Growing Conditions",
		Body:  cond.String(),
	})

	for _, stage := range g.GrowthStages {
		sections = append(sections, render.Section{
			Title: stage.StageName,
			Body: fmt.Sprintf("Duration: %s\n\nCare:\n%s\n\nIndicators:\n%s",
				stage.Duration, stage.CareInstructions, bulleted(stage.KeyIndicators)),
		})
	}

	sections = append(sections, render.Section{
		Title: "Daily Care Routine",
		Body: fmt.Sprintf("Morning:\n%s\n\nAfternoon:\n%s\n\nEvening:\n%s",
			bulleted(g.DailyCare.MorningRoutine),
			bulleted(g.DailyCare.AfternoonRoutine),
			bulleted(g.DailyCare.EveningRoutine)),
	})

	for _, problem := range g.CommonProblems {
		sections = append(sections, render.Section{
			Title: problem.Problem,
			Body: fmt.Sprintf("Symptoms:\n%s\n\nSolution:\n%s\n\nPrevention:\n%s",
				bulleted(problem.Symptoms), problem.Solution, problem.Prevention),
		})
	}

	sections = append(sections, render.Section{
		Title: "Additional Tips",
		Body:  bulleted(g.AdditionalTips),
	})

	return sections
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return "- " + strings.Join(items, "\n- ")
}
