package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/yungbote/plantguide-backend/internal/clients/gemini"
	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

// GuidanceService turns a validated profile into a schema-checked guidance
// record, either through the upstream generation service or synthetically.
type GuidanceService interface {
	Generate(ctx context.Context, profile domain.PlantProfile) (domain.GuidanceRecord, error)
}

type guidanceService struct {
	log    *logger.Logger
	client gemini.Client
}

func NewGuidanceService(log *logger.Logger, client gemini.Client) GuidanceService {
	return &guidanceService{
		log:    log.With("service", "GuidanceService"),
		client: client,
	}
}

func (s *guidanceService) Generate(ctx context.Context, profile domain.PlantProfile) (domain.GuidanceRecord, error) {
	if !s.client.Configured() {
		s.log.Info("No upstream credential configured, using synthetic guidance",
			"plant_name", profile.PlantName,
		)
		return BuildSyntheticGuidance(profile), nil
	}

	prompt := BuildGuidePrompt(profile)
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.GuidanceRecord{}, err
	}

	cleaned := stripCodeFences(text)
	record, err := domain.ParseGuidanceRecord([]byte(cleaned))
	if err != nil {
		return domain.GuidanceRecord{}, err
	}

	s.log.Debug("Guidance generated from upstream",
		"plant_name", profile.PlantName,
		"growth_stages", len(record.GrowthStages),
		"common_problems", len(record.CommonProblems),
	)
	return record, nil
}

var fenceRe = regexp.MustCompile("```(?:json)?")

// stripCodeFences removes Markdown fence wrapping the model sometimes emits
// despite instructions. Prefix/suffix removal handles the common case; the
// regexp sweep catches fences left mid-text.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	text = fenceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
