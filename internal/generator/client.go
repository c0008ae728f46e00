package generator

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sumanraj-P/quizgenie-api/internal/config"
	"github.com/Sumanraj-P/quizgenie-api/internal/logger"
	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

// LLMClient is the interface every model backend satisfies.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and turns its replies into quiz items.
type Generator struct {
	llm   LLMClient
	model string
	log   *logger.Logger
}

func NewGenerator(llm LLMClient, model string, log *logger.Logger) *Generator {
	return &Generator{llm: llm, model: model, log: log.With("component", "generator", "model", model)}
}

// NewLLMClient builds the backend selected by cfg.LLMProvider and returns it
// together with the model name it reports.
func NewLLMClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (LLMClient, string, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, "", err
		}
		log.Info("Generator using Gemini API", "model", cfg.GeminiModel)
		return client, cfg.GeminiModel, nil
	case config.ProviderAnthropic:
		log.Info("Generator using Anthropic API", "model", cfg.AnthropicModel)
		return NewAPIClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), cfg.AnthropicModel, nil
	case config.ProviderCLI:
		log.Info("Generator using Claude CLI", "path", cfg.ClaudeCLIPath)
		return NewCLIClient(cfg.ClaudeCLIPath), "claude-cli", nil
	case config.ProviderMock:
		log.Info("Generator using mock data")
		return NewMockClient(), "mock", nil
	default:
		return nil, "", fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateQuiz makes a single model call. Any error means no quiz at all;
// there is no retry and no partial result.
func (g *Generator) GenerateQuiz(ctx context.Context, topic string, difficulty models.Difficulty, numQuestions int) ([]models.QuizItem, error) {
	userPrompt := BuildQuizPrompt(topic, difficulty, numQuestions)

	resp, err := g.llm.Generate(ctx, SystemPrompt(), userPrompt)
	if err == nil && resp == nil {
		err = ErrEmptyReply
	}
	if err != nil {
		g.log.Error("Error generating quiz", "topic", topic, "difficulty", difficulty, "error", err)
		return nil, fmt.Errorf("generate quiz: %w", err)
	}

	g.log.Debug("Model reply received", "prompt_tokens", resp.PromptTokens, "output_tokens", resp.OutputTokens)

	items, err := ParseQuizReply(resp.Content)
	if err != nil {
		g.log.Error("Error parsing quiz reply", "topic", topic, "error", err)
		return nil, fmt.Errorf("parse quiz reply: %w", err)
	}

	for _, w := range CheckQuizItems(items, numQuestions) {
		g.log.Warn("Quiz reply drift", "topic", topic, "warning", w)
	}

	return items, nil
}

// ── MockClient (local development) ─────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var requestedCountRe = regexp.MustCompile(`Create (\d+) multiple-choice`)

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	count := 3
	if match := requestedCountRe.FindStringSubmatch(userPrompt); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			count = n
		}
	}
	return &LLMResponse{
		Content:      buildMockReply(count),
		PromptTokens: len(userPrompt) / 4,
		OutputTokens: 120 * count,
	}, nil
}

func buildMockReply(count int) string {
	labels := models.OptionLabels

	var b strings.Builder
	b.WriteString("```json\n[")
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		correct := labels[i%len(labels)]
		fmt.Fprintf(&b, `{"question":"[Mock] Question %d?","options":{"A":"[Mock] Option A","B":"[Mock] Option B","C":"[Mock] Option C","D":"[Mock] Option D"},"correct_answer":"%s","explanation":"[Mock] %s is correct for question %d."}`,
			i+1, correct, correct, i+1)
	}
	b.WriteString("]\n```")
	return b.String()
}
