package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
	"github.com/yungbote/plantguide-backend/internal/render"
)

const artifactFileType = "png"

// ArtifactService persists a guidance record as a single visual guide file
// and returns a reference to it.
type ArtifactService interface {
	Generate(ctx context.Context, guidance domain.GuidanceRecord, plantName string) (domain.ArtifactReference, error)
}

type ArtifactConfig struct {
	// OutputDir is the process-local directory artifacts are written to.
	OutputDir string
	// PublicPath is the URL prefix under which the file store serves
	// OutputDir, e.g. "/files".
	PublicPath string
	// FontPath optionally points at a TTF used for rendering.
	FontPath string
}

type artifactService struct {
	log        *logger.Logger
	outputDir  string
	publicPath string
	renderer   *render.GuideRenderer
}

func NewArtifactService(log *logger.Logger, cfg ArtifactConfig) (ArtifactService, error) {
	outputDir := strings.TrimSpace(cfg.OutputDir)
	if outputDir == "" {
		outputDir = "generated_files"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact output dir: %w", err)
	}

	publicPath := strings.TrimSpace(cfg.PublicPath)
	if publicPath == "" {
		publicPath = "/files"
	}
	publicPath = "/" + strings.Trim(publicPath, "/")

	renderer, err := render.NewGuideRenderer(render.Options{FontPath: cfg.FontPath})
	if err != nil {
		return nil, fmt.Errorf("init guide renderer: %w", err)
	}

	return &artifactService{
		log:        log.With("service", "ArtifactService"),
		outputDir:  outputDir,
		publicPath: publicPath,
		renderer:   renderer,
	}, nil
}

func (s *artifactService) Generate(ctx context.Context, guidance domain.GuidanceRecord, plantName string) (domain.ArtifactReference, error) {
	_ = ctx // rendering and persistence are synchronous local work

	sections := BuildGuideSections(guidance, plantName)
	png, err := s.renderer.Render(sections)
	if err != nil {
		return errorReference(err), apierr.ArtifactIO(fmt.Errorf("render visual guide: %w", err))
	}

	filename := ArtifactFilename(plantName)
	path := filepath.Join(s.outputDir, filename)
	// Same plant name means same filename: a repeat request overwrites the
	// previous artifact, last writer wins.
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return errorReference(err), apierr.ArtifactIO(fmt.Errorf("write visual guide: %w", err))
	}

	s.log.Debug("Visual guide written",
		"plant_name", plantName,
		"file", filename,
		"sections", len(sections),
		"bytes", len(png),
	)

	fileURL := s.publicPath + "/" + filename
	fileType := artifactFileType
	return domain.ArtifactReference{
		Status:   "success",
		FileURL:  &fileURL,
		FileType: &fileType,
		Message:  "Visual guide generated successfully",
	}, nil
}

// ArtifactFilename derives the artifact filename from the plant name:
// lower-cased, spaces replaced with underscores, fixed suffix.
func ArtifactFilename(plantName string) string {
	base := strings.ReplaceAll(strings.ToLower(plantName), " ", "_")
	return base + "_care_guide." + artifactFileType
}

func errorReference(err error) domain.ArtifactReference {
	return domain.ArtifactReference{
		Status:  "error",
		Message: err.Error(),
	}
}
