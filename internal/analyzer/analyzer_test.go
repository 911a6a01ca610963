package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akkii71/perspective-engine/apimodels"
	"github.com/Akkii71/perspective-engine/internal/gemini"
)

type stubProvider struct {
	models  []gemini.ModelInfo
	listErr error
	output  string
	genErr  error

	gotModel  string
	gotPrompt string
}

func (s *stubProvider) ListModels(ctx context.Context) ([]gemini.ModelInfo, error) {
	return s.models, s.listErr
}

func (s *stubProvider) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	s.gotModel = model
	s.gotPrompt = prompt
	return s.output, s.genErr
}

const wellFormedOutput = `{
	"emotions": {"Stress": 8, "Clarity": 3, "Frustration": 7, "Hope": 5, "Anxiety": 6},
	"perspectives": {
		"stoic": "Focus on what you control:
your next step.",
		"strategist": "List options, pick one, act.",
		"compassionate": "Feeling stuck is human."
	},
	"one_line_takeaway": "The obstacle is the way."
}`

func TestAnalyzeDecodesOutputWithEmbeddedNewlines(t *testing.T) {
	provider := &stubProvider{output: wellFormedOutput}
	a := New(provider, "key")

	result, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "I'm stuck in my career"})
	require.NoError(t, err)

	assert.Equal(t, 8, result.Emotions.Stress)
	assert.Equal(t, 3, result.Emotions.Clarity)
	assert.Equal(t, 7, result.Emotions.Frustration)
	assert.Equal(t, 5, result.Emotions.Hope)
	assert.Equal(t, 6, result.Emotions.Anxiety)

	for _, field := range []string{
		result.Perspectives.Stoic,
		result.Perspectives.Strategist,
		result.Perspectives.Compassionate,
		result.Takeaway,
	} {
		assert.NotEmpty(t, field)
		assert.False(t, strings.ContainsAny(field, "\n\r"), "field %q contains a raw newline", field)
	}
}

func TestAnalyzeDecodesFencedOutput(t *testing.T) {
	plain := `{"emotions": {"Stress": 2, "Clarity": 9, "Frustration": 1, "Hope": 8, "Anxiety": 2},` +
		`"perspectives": {"stoic": "a", "strategist": "b", "compassionate": "c"},` +
		`"one_line_takeaway": "d"}`

	fenced := &stubProvider{output: "```json\n" + plain + "\n```"}
	unwrapped := &stubProvider{output: plain}

	a1 := New(fenced, "key")
	a2 := New(unwrapped, "key")

	r1, err := a1.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	require.NoError(t, err)
	r2, err := a2.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, r2.Emotions, r1.Emotions)
	assert.Equal(t, r2.Perspectives, r1.Perspectives)
	assert.Equal(t, r2.Takeaway, r1.Takeaway)
}

func TestAnalyzeClampsOutOfRangeScores(t *testing.T) {
	provider := &stubProvider{output: `{
		"emotions": {"Stress": 27, "Clarity": -3, "Frustration": 10, "Hope": 0, "Anxiety": 11},
		"perspectives": {"stoic": "a", "strategist": "b", "compassionate": "c"},
		"one_line_takeaway": "d"
	}`}
	a := New(provider, "key")

	result, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Emotions.Stress)
	assert.Equal(t, 0, result.Emotions.Clarity)
	assert.Equal(t, 10, result.Emotions.Frustration)
	assert.Equal(t, 0, result.Emotions.Hope)
	assert.Equal(t, 10, result.Emotions.Anxiety)
}

func TestAnalyzeRateLimitIncludesHint(t *testing.T) {
	provider := &stubProvider{genErr: &gemini.RateLimitError{StatusCode: 429, Message: "quota exceeded"}}
	a := New(provider, "key")

	_, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), RateLimitHint)
	assert.True(t, gemini.IsRateLimit(err))
}

func TestAnalyzeUndecodableOutput(t *testing.T) {
	provider := &stubProvider{output: "I am sorry, I cannot help with that."}
	a := New(provider, "key")

	_, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	assert.ErrorContains(t, err, "decode analysis")
}

func TestAnalyzeMissingAPIKey(t *testing.T) {
	a := New(&stubProvider{}, "")

	_, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "hello"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := New(&stubProvider{output: wellFormedOutput}, "key")

	_, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestAnalyzeUsesSelectedModelAndPrompt(t *testing.T) {
	provider := &stubProvider{
		models: []gemini.ModelInfo{{
			Name:                       "models/gemini-1.5-flash-latest",
			SupportedGenerationMethods: []string{"generateContent"},
		}},
		output: wellFormedOutput,
	}
	a := New(provider, "key")

	result, err := a.Analyze(context.Background(), apimodels.AnalysisRequest{Text: "I'm stuck in my career"})
	require.NoError(t, err)

	assert.Equal(t, "models/gemini-1.5-flash-latest", provider.gotModel)
	assert.Equal(t, "models/gemini-1.5-flash-latest", result.Metadata.Model)
	assert.Contains(t, provider.gotPrompt, "I'm stuck in my career")
	assert.Contains(t, provider.gotPrompt, `"Stress"`)
	assert.Contains(t, provider.gotPrompt, `"one_line_takeaway"`)
}
