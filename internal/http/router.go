package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/plantguide-backend/internal/http/handlers"
	"github.com/yungbote/plantguide-backend/internal/http/middleware"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string

	TracingEnabled bool
	ServiceName    string

	GuideHandler *handlers.GuideHandler

	// FilesDir is served statically under FilesPublicPath so generated
	// artifacts are downloadable by reference.
	FilesDir        string
	FilesPublicPath string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	router.GET("/", handlers.APIInfo)
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/generate-plant-guide", cfg.GuideHandler.Generate)
	}

	if cfg.FilesDir != "" && cfg.FilesPublicPath != "" {
		router.Static(cfg.FilesPublicPath, cfg.FilesDir)
	}

	return router
}
