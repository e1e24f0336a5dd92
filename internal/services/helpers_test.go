package services

import (
	"go.uber.org/zap"

	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func testProfile() domain.PlantProfile {
	return domain.PlantProfile{
		PlantName:         "Tomato",
		PlantType:         "Vegetable",
		Climate:           "Temperate",
		SunlightHours:     6,
		SoilType:          "Loamy",
		WateringFrequency: "Daily",
		ExperienceLevel:   "Beginner",
	}
}
