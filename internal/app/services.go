package app

import (
	"fmt"

	"github.com/yungbote/plantguide-backend/internal/clients/gemini"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
	"github.com/yungbote/plantguide-backend/internal/services"
)

type Services struct {
	Gemini   gemini.Client
	Guidance services.GuidanceService
	Artifact services.ArtifactService
}

func wireServices(log *logger.Logger, cfg Config) (Services, error) {
	log.Info("Wiring services...")

	client := gemini.NewClient(log, cfg.Gemini)
	guidance := services.NewGuidanceService(log, client)

	artifact, err := services.NewArtifactService(log, cfg.Artifact)
	if err != nil {
		return Services{}, fmt.Errorf("init artifact service: %w", err)
	}

	return Services{
		Gemini:   client,
		Guidance: guidance,
		Artifact: artifact,
	}, nil
}
