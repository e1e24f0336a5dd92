package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yungbote/plantguide-backend/internal/clients/gemini"
	"github.com/yungbote/plantguide-backend/internal/domain"
	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
	"github.com/yungbote/plantguide-backend/internal/services"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// guideTestEnv wires the full pipeline behind a test router. The upstream
// call counter lets tests assert which requests never reach the network.
type guideTestEnv struct {
	router    *gin.Engine
	outputDir string
	calls     *atomic.Int64
}

func newGuideTestEnv(t *testing.T, apiKey string) *guideTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testLogger()

	var calls atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	client := gemini.NewClient(log, gemini.Config{APIKey: apiKey, BaseURL: upstream.URL})
	guidance := services.NewGuidanceService(log, client)

	outputDir := t.TempDir()
	artifact, err := services.NewArtifactService(log, services.ArtifactConfig{
		OutputDir:  outputDir,
		PublicPath: "/files",
	})
	if err != nil {
		t.Fatalf("init artifact service: %v", err)
	}

	router := gin.New()
	router.POST("/api/generate-plant-guide", NewGuideHandler(log, guidance, artifact, true).Generate)

	return &guideTestEnv{router: router, outputDir: outputDir, calls: &calls}
}

func (e *guideTestEnv) post(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-plant-guide", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func validRequestBody() map[string]any {
	return map[string]any{
		"plant_name":         "Tomato",
		"plant_type":         "Vegetable",
		"climate":            "Temperate",
		"sunlight_hours":     6,
		"soil_type":          "Loamy",
		"watering_frequency": "Daily",
		"experience_level":   "Beginner",
	}
}

func TestGenerateGuideSyntheticSuccess(t *testing.T) {
	t.Parallel()

	// No API key: guidance must come from the synthetic path.
	env := newGuideTestEnv(t, "")
	w := env.post(t, validRequestBody())

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if got := env.calls.Load(); got != 0 {
		t.Fatalf("synthetic request made %d upstream calls", got)
	}

	var resp domain.GuideResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Metadata["plant_name"] != "Tomato" {
		t.Fatalf("metadata plant_name = %v", resp.Metadata["plant_name"])
	}
	if len(resp.PlantCareGuidance.GrowthStages) < 4 {
		t.Fatalf("expected at least 4 growth stages, got %d", len(resp.PlantCareGuidance.GrowthStages))
	}
	if resp.VisualGuide.Status != "success" {
		t.Fatalf("visual guide status = %q", resp.VisualGuide.Status)
	}
	if resp.VisualGuide.FileURL == nil || *resp.VisualGuide.FileURL != "/files/tomato_care_guide.png" {
		t.Fatalf("visual guide file url = %v", resp.VisualGuide.FileURL)
	}
	if _, err := os.Stat(filepath.Join(env.outputDir, "tomato_care_guide.png")); err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
}

func TestGenerateGuideRejectsBeforePipeline(t *testing.T) {
	t.Parallel()

	// Configured client pointed at a counting upstream: validation failures
	// must reject before any pipeline stage runs.
	env := newGuideTestEnv(t, "test-key")

	body := validRequestBody()
	body["sunlight_hours"] = 25
	w := env.post(t, body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if got := env.calls.Load(); got != 0 {
		t.Fatalf("rejected request made %d upstream calls", got)
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != apierr.CodeValidation {
		t.Fatalf("error code = %q", envelope.Error.Code)
	}

	entries, err := os.ReadDir(env.outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected request wrote %d artifacts", len(entries))
	}
}

func TestGenerateGuideValidationTable(t *testing.T) {
	t.Parallel()

	env := newGuideTestEnv(t, "test-key")

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing plant_name", func(b map[string]any) { delete(b, "plant_name") }},
		{"blank plant_name", func(b map[string]any) { b["plant_name"] = "   " }},
		{"missing sunlight_hours", func(b map[string]any) { delete(b, "sunlight_hours") }},
		{"negative sunlight_hours", func(b map[string]any) { b["sunlight_hours"] = -1 }},
		{"overlong plant_name", func(b map[string]any) { b["plant_name"] = longString(101) }},
		{"overlong soil_type", func(b map[string]any) { b["soil_type"] = longString(51) }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			body := validRequestBody()
			tc.mutate(body)
			w := env.post(t, body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
			}
		})
	}

	if got := env.calls.Load(); got != 0 {
		t.Fatalf("validation failures made %d upstream calls", got)
	}
}

func TestGenerateGuideUpstreamFailureSurfaces502(t *testing.T) {
	t.Parallel()

	// The configured upstream always returns 500, so the pipeline must fail
	// with an upstream error and write nothing.
	env := newGuideTestEnv(t, "test-key")
	w := env.post(t, validRequestBody())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != apierr.CodeUpstreamUnavailable {
		t.Fatalf("error code = %q", envelope.Error.Code)
	}

	entries, err := os.ReadDir(env.outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed request wrote %d artifacts", len(entries))
	}
}

func TestGenerateGuideTrimsProfileFields(t *testing.T) {
	t.Parallel()

	env := newGuideTestEnv(t, "")
	body := validRequestBody()
	body["plant_name"] = "  Tomato  "
	w := env.post(t, body)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var resp domain.GuideResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Metadata["plant_name"] != "Tomato" {
		t.Fatalf("metadata should echo the trimmed name, got %v", resp.Metadata["plant_name"])
	}
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
