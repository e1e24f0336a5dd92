package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yungbote/plantguide-backend/internal/platform/apierr"
	"github.com/yungbote/plantguide-backend/internal/platform/logger"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 30 * time.Second
)

// Generation parameters are a policy choice of this service, not something
// callers can override per request.
const (
	genTemperature     = 0.7
	genTopK            = 40
	genTopP            = 0.95
	genMaxOutputTokens = 2048
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client talks to the Gemini generateContent endpoint. It performs exactly
// one outbound request per GenerateContent call: a single failure is
// surfaced, never retried.
type Client interface {
	// Configured reports whether a credential is present. Callers use this
	// to decide between the live and synthetic guidance paths.
	Configured() bool

	// GenerateContent sends the prompt and returns the concatenated text of
	// the first candidate.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &client{
		log:        log.With("service", "GeminiClient"),
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type geminiHTTPError struct {
	StatusCode int
	Body       string
}

func (e *geminiHTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

func (c *client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     genTemperature,
			TopK:            genTopK,
			TopP:            genTopP,
			MaxOutputTokens: genMaxOutputTokens,
		},
	}

	raw, err := c.doOnce(ctx, payload)
	if err != nil {
		return "", err
	}

	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", apierr.MalformedUpstream(fmt.Errorf("decode gemini envelope: %w", err))
	}
	if len(resp.Candidates) == 0 {
		return "", apierr.MalformedUpstream(fmt.Errorf("gemini response contained no candidates"))
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", apierr.MalformedUpstream(fmt.Errorf("gemini candidate contained no text parts"))
	}
	return text, nil
}

func (c *client) doOnce(ctx context.Context, body any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("encode gemini request: %w", err))
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("build gemini request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("gemini request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("read gemini response: %w", err))
	}

	c.log.Debug("Gemini request complete",
		"model", c.model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apierr.UpstreamUnavailable(&geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)})
	}
	return raw, nil
}
