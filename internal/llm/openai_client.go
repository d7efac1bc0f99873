package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/zenith/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error reading the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to read OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are the analytics core of a personal discipline tracker.

You receive the user's configured protocols and up to 30 days of execution history.
Each history entry names the protocol, its archetype, the day, whether it was
completed and an optional self-reported energy level (1-5).

Write a short status report with three labelled sections:
STRATEGIC_OVERVIEW: overall performance trajectory.
ANOMALY_DETECTION: specific failure patterns in the data (weekday drops, protocols failing after low-energy days).
OPTIMIZATION_ADVICE: one high-impact adjustment.

Tone: terse, tactical, data-driven. Maximum 100 words. Plain text only, no markdown.
Base every statement on the provided data. If the history is thin, say so.`

const userPromptTemplate = `Protocol configuration: %s

Execution history (JSON):

%s`

// NarrativeLLM generates the advisory status report from a log projection.
type NarrativeLLM interface {
	// GenerateNarrative returns plain text; an empty string is a valid answer.
	GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (string, error)
}

// OpenAIClient implements NarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateNarrative calls OpenAI to write the status report.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	historyJSON, err := json.Marshal(narrativeCtx.History)
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize history: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, describeProtocols(narrativeCtx.Protocols), string(historyJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// describeProtocols renders "Name [ARCHETYPE], ..." for the prompt.
func describeProtocols(protocols []domain.NarrativeProtocol) string {
	if len(protocols) == 0 {
		return "none"
	}
	parts := make([]string, len(protocols))
	for i, p := range protocols {
		parts[i] = fmt.Sprintf("%s [%s]", p.Name, p.Archetype)
	}
	return strings.Join(parts, ", ")
}
