package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Akkii71/perspective-engine/apimodels"
	"github.com/Akkii71/perspective-engine/internal/gemini"
	"github.com/Akkii71/perspective-engine/internal/sanitize"
)

var (
	ErrMissingAPIKey = errors.New("no API key configured")
	ErrEmptyInput    = errors.New("input text cannot be empty")
)

// RateLimitHint is appended to rate-limit failures so the user knows the fix
// is just waiting, not rephrasing.
const RateLimitHint = "the model is rate limited right now; wait about 30 seconds and try again"

// Provider is the slice of the Gemini client the analyzer needs.
type Provider interface {
	ListModels(ctx context.Context) ([]gemini.ModelInfo, error)
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

type Analyzer struct {
	provider Provider
	apiKey   string
}

func New(provider Provider, apiKey string) *Analyzer {
	return &Analyzer{
		provider: provider,
		apiKey:   apiKey,
	}
}

// Analyze runs one request end to end: pick a model, prompt it, sanitize the
// raw text it returns, and decode the fixed analysis schema. Every failure
// collapses into the returned error; nothing is retried.
func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	if a.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}

	startTime := time.Now()

	// Re-selected on every call; the catalog shifts and results are not cached.
	model := gemini.SelectModel(ctx, a.provider)
	slog.Info("starting analysis", "model", model)

	raw, err := a.provider.GenerateContent(ctx, model, buildPrompt(req.Text))
	if err != nil {
		if gemini.IsRateLimit(err) {
			return nil, fmt.Errorf("%w; %s", err, RateLimitHint)
		}
		return nil, fmt.Errorf("generate content with %s: %w", model, err)
	}

	cleaned := sanitize.Clean(raw)

	var decoded struct {
		Emotions     apimodels.EmotionScores  `json:"emotions"`
		Perspectives apimodels.PerspectiveSet `json:"perspectives"`
		Takeaway     string                   `json:"one_line_takeaway"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		slog.Error("model returned undecodable payload", "model", model, "error", err)
		return nil, fmt.Errorf("decode analysis from %s: %w", model, err)
	}

	decoded.Emotions.Clamp()

	slog.Debug("analysis completed", "model", model, "duration", time.Since(startTime))

	return &apimodels.AnalysisResponse{
		Emotions:     decoded.Emotions,
		Perspectives: decoded.Perspectives,
		Takeaway:     decoded.Takeaway,
		Metadata: apimodels.AnalysisMetadata{
			Duration: time.Since(startTime).String(),
			Model:    model,
		},
	}, nil
}
