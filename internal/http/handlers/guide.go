package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
	"github.com/yungbote/plantguide-backend/internal/services"
)

var tracer = otel.Tracer("plantguide/handlers")

// genericFailureMessage is what callers see on 5xx when debug mode is off.
const genericFailureMessage = "Failed to generate plant care guide"

// GuideRequest is the inbound wire shape. SunlightHours is a pointer so the
// binding layer can tell a missing key from a legitimate zero.
type GuideRequest struct {
	PlantName         string `json:"plant_name" binding:"required"`
	PlantType         string `json:"plant_type" binding:"required"`
	Climate           string `json:"climate" binding:"required"`
	SunlightHours     *int   `json:"sunlight_hours" binding:"required"`
	SoilType          string `json:"soil_type" binding:"required"`
	WateringFrequency string `json:"watering_frequency" binding:"required"`
	ExperienceLevel   string `json:"experience_level" binding:"required"`
}

type GuideHandler struct {
	log      *logger.Logger
	guidance services.GuidanceService
	artifact services.ArtifactService
	debug    bool
}

func NewGuideHandler(log *logger.Logger, guidance services.GuidanceService, artifact services.ArtifactService, debug bool) *GuideHandler {
	return &GuideHandler{
		log:      log.With("handler", "GuideHandler"),
		guidance: guidance,
		artifact: artifact,
		debug:    debug,
	}
}

// Generate runs the full pipeline: validate profile, generate guidance,
// persist the visual artifact, assemble the response. Validation failures
// reject before any pipeline stage runs; any stage failure fails the whole
// request, no partial responses.
func (h *GuideHandler) Generate(c *gin.Context) {
	var req GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	profile, err := domain.NewPlantProfile(domain.PlantProfile{
		PlantName:         req.PlantName,
		PlantType:         req.PlantType,
		Climate:           req.Climate,
		SunlightHours:     *req.SunlightHours,
		SoilType:          req.SoilType,
		WateringFrequency: req.WateringFrequency,
		ExperienceLevel:   req.ExperienceLevel,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	ctx, span := tracer.Start(c.Request.Context(), "guide.generate")
	span.SetAttributes(attribute.String("plant.name", profile.PlantName))
	defer span.End()

	start := time.Now()

	h.log.Info("Generating plant guide", "plant_name", profile.PlantName)
	guidance, err := h.guidance.Generate(ctx, profile)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("Generating visual guide", "plant_name", profile.PlantName)
	artifact, err := h.artifact.Generate(ctx, guidance, profile.PlantName)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := services.AssembleGuideResponse(profile, guidance, artifact, time.Since(start))
	h.log.Info("Plant guide generated",
		"plant_name", profile.PlantName,
		"processing_time_seconds", resp.Metadata["processing_time_seconds"],
	)
	RespondOK(c, resp)
}

// fail logs the full failure detail and surfaces a response whose message is
// only detailed in debug mode.
func (h *GuideHandler) fail(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	h.log.Error("Plant guide generation failed",
		"code", apiErr.Code,
		"status", apiErr.Status,
		"error", apiErr.Error(),
	)
	msg := apiErr.Error()
	if apiErr.Status >= http.StatusInternalServerError && !h.debug {
		msg = genericFailureMessage
	}
	RespondError(c, apiErr.Status, apiErr.Code, msg)
}
