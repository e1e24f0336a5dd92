package app

import (
	"github.com/gin-gonic/gin"

	httpx "github.com/yungbote/plantguide-backend/internal/http"
	httpH "github.com/yungbote/plantguide-backend/internal/http/handlers"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

type Handlers struct {
	Guide *httpH.GuideHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Guide: httpH.NewGuideHandler(log, services.Guidance, services.Artifact, cfg.Debug),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	return httpx.NewRouter(httpx.RouterConfig{
		Log:             log,
		AllowedOrigins:  cfg.AllowedOrigins,
		TracingEnabled:  cfg.OTel.Enabled,
		ServiceName:     cfg.OTel.ServiceName,
		GuideHandler:    handlers.Guide,
		FilesDir:        cfg.Artifact.OutputDir,
		FilesPublicPath: cfg.Artifact.PublicPath,
	})
}
