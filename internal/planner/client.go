package planner

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
)

// LLMClient is the interface both draft generator implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and produces development-plan drafts.
type Generator struct {
	llm   LLMClient
	model string
}

// NewGenerator builds the production or mock generator.
func NewGenerator(model string, mock bool) *Generator {
	if mock {
		log.Println("[planner] Generator using mock data")
		return &Generator{llm: NewMockClient(), model: "mock"}
	}

	if model == "" {
		model = "claude-sonnet-4-5"
	}
	log.Println("[planner] Generator using Anthropic API:", model)
	return &Generator{llm: NewAPIClient(model), model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateDraft proposes development goals from a cognitive profile.
func (g *Generator) GenerateDraft(ctx context.Context, profile *models.CognitiveProfile, focusAreas []string, goalCount int) (*GeneratedDraft, *LLMResponse, error) {
	systemPrompt := DraftSystemPrompt()
	userPrompt := BuildDraftUserPrompt(profile, focusAreas, goalCount)

	resp, err := g.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, nil, fmt.Errorf("generate plan draft: %w", err)
	}

	draft, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, resp, fmt.Errorf("parse draft response: %w", err)
	}

	return draft, resp, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockJSON(),
		PromptTokens: 800,
		OutputTokens: 1200,
	}, nil
}

func buildMockJSON() string {
	goals := []struct {
		title, desc, area string
		weeks             int
	}{
		{
			"Practice structured feedback in weekly 1:1s",
			"[Mock] Prepare one piece of specific, behavior-focused feedback before each weekly 1:1 and deliver it using the situation-behavior-impact structure. Note the reaction and refine the approach.",
			"communication", 6,
		},
		{
			"Lead one cross-team working session",
			"[Mock] Volunteer to facilitate a cross-team session, set the agenda in advance, timebox discussion and close with written decisions and owners.",
			"leadership", 8,
		},
		{
			"Build a personal prioritization routine",
			"[Mock] Every Monday, sort the week's commitments by urgency and importance, block focus time for the top strategic item and review the outcome on Friday.",
			"time_management", 4,
		},
	}

	out := `{"goals":[`
	for i, g := range goals {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"title":%q,"description":%q,"focus_area":%q,"suggested_weeks":%d}`,
			g.title, g.desc, g.area, g.weeks)
	}
	out += `]}`
	return out
}
