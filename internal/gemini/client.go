package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Akkii71/perspective-engine/internal/config"
)

// ModelInfo describes one entry in the provider's model catalog.
type ModelInfo struct {
	Name                       string   `json:"name"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// SupportsGeneration reports whether the model can serve generateContent calls.
func (m ModelInfo) SupportsGeneration() bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	limiter  *rate.Limiter
}

func NewClient(cfg *config.GeminiConfig) (*Client, error) {
	slog.Info("creating Gemini client", "endpoint", cfg.APIEndpoint)
	if cfg.APIEndpoint == "" {
		return nil, fmt.Errorf("gemini endpoint cannot be empty")
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 15
	}

	return &Client{
		endpoint: strings.TrimSuffix(cfg.APIEndpoint, "/"),
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}, nil
}

type listModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ListModels fetches the provider's model catalog.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/v1beta/models", url.Values{"pageSize": {"100"}}), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var listed listModelsResponse
	if err := json.Unmarshal(body, &listed); err != nil {
		return nil, fmt.Errorf("unmarshal model list: %w", err)
	}

	slog.Debug("listed models", "count", len(listed.Models))
	return listed.Models, nil
}

// GenerateContent sends the prompt to the named model and returns the text of
// the first candidate. Model names are the catalog form, e.g.
// "models/gemini-1.5-flash".
func (c *Client) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.url("/v1beta/"+model+":generateContent", nil), bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("sending generate request", "model", model)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var resp generateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) url(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("key", c.apiKey)
	return c.endpoint + path + "?" + query.Encode()
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if isRateLimitResponse(resp.StatusCode, body) {
			return nil, &RateLimitError{StatusCode: resp.StatusCode, Message: string(body)}
		}
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
