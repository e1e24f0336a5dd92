package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/plantguide-backend/internal/clients/gemini"
	"github.com/yungbote/plantguide-backend/internal/observability"
	"github.com/yungbote/plantguide-backend/internal/platform/envutil"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
	"github.com/yungbote/plantguide-backend/internal/services"
)

// Config is the single process configuration value. It is built once here
// and passed by reference into every component; nothing else reads the
// environment.
type Config struct {
	LogMode        string
	Environment    string
	Host           string
	Port           string
	Debug          bool
	AllowedOrigins []string

	Gemini   gemini.Config
	Artifact services.ArtifactConfig
	OTel     observability.Config
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// fileConfig is the optional YAML overlay (CONFIG_FILE). Pointer fields
// distinguish "absent" from zero so the file only overrides what it names.
type fileConfig struct {
	Host           *string   `yaml:"host"`
	Port           *string   `yaml:"port"`
	Debug          *bool     `yaml:"debug"`
	AllowedOrigins *[]string `yaml:"allowed_origins"`
	Gemini         struct {
		APIKey         *string `yaml:"api_key"`
		BaseURL        *string `yaml:"base_url"`
		Model          *string `yaml:"model"`
		TimeoutSeconds *int    `yaml:"timeout_seconds"`
	} `yaml:"gemini"`
	Artifact struct {
		OutputDir  *string `yaml:"output_dir"`
		PublicPath *string `yaml:"public_path"`
		FontPath   *string `yaml:"font_path"`
	} `yaml:"artifact"`
	OTel struct {
		Enabled     *bool    `yaml:"enabled"`
		ServiceName *string  `yaml:"service_name"`
		Endpoint    *string  `yaml:"endpoint"`
		Insecure    *bool    `yaml:"insecure"`
		SampleRatio *float64 `yaml:"sample_ratio"`
	} `yaml:"otel"`
}

// LoadConfig layers defaults, then the optional YAML file, then environment
// variables (the environment wins).
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		LogMode:        "development",
		Environment:    "development",
		Host:           "0.0.0.0",
		Port:           "8000",
		Debug:          true,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		Gemini: gemini.Config{
			BaseURL: gemini.DefaultBaseURL,
			Model:   gemini.DefaultModel,
			Timeout: gemini.DefaultTimeout,
		},
		Artifact: services.ArtifactConfig{
			OutputDir:  "generated_files",
			PublicPath: "/files",
		},
		OTel: observability.Config{
			ServiceName: "plantguide",
			SampleRatio: 0.1,
		},
	}

	if path := envutil.String("CONFIG_FILE", ""); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
		log.Info("Config file loaded", "path", path)
	}

	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Environment = envutil.String("ENVIRONMENT", cfg.Environment)
	cfg.Host = envutil.String("HOST", cfg.Host)
	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.Debug = envutil.Bool("DEBUG", cfg.Debug)
	if origins := envutil.String("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	}

	cfg.Gemini.APIKey = envutil.String("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.BaseURL = envutil.String("GEMINI_BASE_URL", cfg.Gemini.BaseURL)
	cfg.Gemini.Model = envutil.String("GEMINI_MODEL", cfg.Gemini.Model)
	if secs := envutil.Int("GEMINI_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.Gemini.Timeout = time.Duration(secs) * time.Second
	}

	cfg.Artifact.OutputDir = envutil.String("ARTIFACT_OUTPUT_DIR", cfg.Artifact.OutputDir)
	cfg.Artifact.PublicPath = envutil.String("ARTIFACT_PUBLIC_PATH", cfg.Artifact.PublicPath)
	cfg.Artifact.FontPath = envutil.String("ARTIFACT_FONT_PATH", cfg.Artifact.FontPath)

	cfg.OTel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.OTel.Enabled)
	cfg.OTel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.OTel.ServiceName)
	cfg.OTel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTel.Endpoint)
	cfg.OTel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.OTel.Insecure)
	cfg.OTel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.OTel.SampleRatio)
	cfg.OTel.Environment = cfg.Environment
	cfg.OTel.Version = version

	if cfg.Gemini.APIKey == "" {
		log.Warn("No GEMINI_API_KEY configured, guidance generation runs in synthetic mode")
	}
	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&cfg.Host, fc.Host)
	setString(&cfg.Port, fc.Port)
	setBool(&cfg.Debug, fc.Debug)
	if fc.AllowedOrigins != nil {
		cfg.AllowedOrigins = *fc.AllowedOrigins
	}

	setString(&cfg.Gemini.APIKey, fc.Gemini.APIKey)
	setString(&cfg.Gemini.BaseURL, fc.Gemini.BaseURL)
	setString(&cfg.Gemini.Model, fc.Gemini.Model)
	if fc.Gemini.TimeoutSeconds != nil && *fc.Gemini.TimeoutSeconds > 0 {
		cfg.Gemini.Timeout = time.Duration(*fc.Gemini.TimeoutSeconds) * time.Second
	}

	setString(&cfg.Artifact.OutputDir, fc.Artifact.OutputDir)
	setString(&cfg.Artifact.PublicPath, fc.Artifact.PublicPath)
	setString(&cfg.Artifact.FontPath, fc.Artifact.FontPath)

	setBool(&cfg.OTel.Enabled, fc.OTel.Enabled)
	setString(&cfg.OTel.ServiceName, fc.OTel.ServiceName)
	setString(&cfg.OTel.Endpoint, fc.OTel.Endpoint)
	setBool(&cfg.OTel.Insecure, fc.OTel.Insecure)
	if fc.OTel.SampleRatio != nil {
		cfg.OTel.SampleRatio = *fc.OTel.SampleRatio
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
