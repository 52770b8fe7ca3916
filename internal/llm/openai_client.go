package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical nutrition coaching assistant.

You receive one client's current calorie/macro recommendation (including the
expert system's reasoning trace), their recent daily weight and intake logs,
and a forward weight projection. Base your conclusions only on the provided
data.

Your goals:
- Restate the recommendation and why the expert system chose this deficit or
  surplus speed, in plain language.
- Compare the recent tracking trend against the recommendation (is the
  client roughly on the projected path?).
- Point out adherence patterns visible in the logs (weekend swings, missing
  days, intake variability).
- Give practical, behavioral suggestions for hitting the calorie and
  protein targets.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT interpret blood markers beyond what the provided categories state.
- Focus only on behavior (meal timing, tracking consistency, protein
  distribution, handling weekends).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the recommendation and the current trend.",
  "observations": [
    "3-6 bullet points about the plan and the tracking data.",
    "At least one item comparing the actual trend to the projection.",
    "If a weekday pattern was detected, one item about it."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about tracking consistency if entries are sparse.",
    "Include at least one suggestion tied to the recommended protein target."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this client's plan and data.

- "calculation" is the current calorie/macro recommendation with component
  energy estimates and category scores.
- "reasoning" lists the expert system's decision trace in order.
- "recent_entries" are the latest daily logs (weight kg, calories, smoothed
  weight, 7-day adaptive TDEE), oldest first.
- "projection" contains the historical series, a 90-day forward simulation
  toward the recommended calories, and any detected weekday weight pattern.

JSON:

%s

Based on this data, respond in the required JSON format.`

// CommentaryLLM is the interface for generating coaching commentary.
type CommentaryLLM interface {
	// GenerateCommentary takes a context object and returns LLM-generated commentary.
	GenerateCommentary(ctx context.Context, commentaryCtx *domain.CommentaryContext) (*domain.CoachCommentary, error)
}

// OpenAIClient implements CommentaryLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating commentary.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateCommentary calls OpenAI to generate coaching commentary.
func (c *OpenAIClient) GenerateCommentary(ctx context.Context, commentaryCtx *domain.CommentaryContext) (*domain.CoachCommentary, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(commentaryCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.CoachCommentary
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
