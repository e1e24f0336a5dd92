package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/plantguide-backend/internal/observability"
	"github.com/yungbote/plantguide-backend/internal/platform/envutil"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

const version = "1.0.0"

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Router   *gin.Engine
	Services Services

	shutdownTracing func(context.Context) error
}

func New() (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	shutdownTracing := observability.InitTracing(context.Background(), log, cfg.OTel)

	serviceset, err := wireServices(log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, cfg, serviceset)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:             log,
		Cfg:             cfg,
		Router:          router,
		Services:        serviceset,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Run serves until the process receives SIGINT or SIGTERM, then drains
// in-flight requests before returning.
func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}

	srv := &http.Server{
		Addr:    a.Cfg.Addr(),
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.Log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracing(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
