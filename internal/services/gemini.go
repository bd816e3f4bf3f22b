package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/logger"
)

const (
	// FallbackText is returned whenever a generation call cannot complete.
	FallbackText = "AI generation unavailable"
	// DemoText is returned when no API key has been configured.
	DemoText = "AI content demo."

	defaultModel      = "gemini-2.5-flash"
	defaultEmbedModel = "text-embedding-004"
	defaultAITimeout  = 20 * time.Second
	maxEmbedChars     = 40000
	logPreviewLength  = 200

	// 2.5 Pro cannot switch thinking off; 128 is the smallest budget it takes.
	minProThinkingBudget = 128
)

var ErrAIUnavailable = errors.New("ai client is not configured")

// TextGenerator never fails: callers always get text back, either generated
// or one of the fixed fallback strings.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) string
}

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type GeminiService interface {
	TextGenerator
	Embedder
	GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// modelsAPI is the subset of *genai.Models the service depends on.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

type geminiService struct {
	models     modelsAPI
	modelName  string
	embedModel string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewGeminiService creates the generation client. An empty API key is not an
// error: the service then answers every prompt with DemoText.
func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) (GeminiService, error) {
	svc := &geminiService{
		modelName:  orDefault(cfg.Model, defaultModel),
		embedModel: orDefault(cfg.EmbedModel, defaultEmbedModel),
		timeout:    cfg.Timeout,
		logger:     logger.OrNop(log).With(zap.String("ai_provider", "gemini")),
	}
	if svc.timeout <= 0 {
		svc.timeout = defaultAITimeout
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		svc.logger.Warn("gemini api key not set, generation runs in demo mode")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	svc.models = client.Models

	return svc, nil
}

// Generate implements TextGenerator.
func (g *geminiService) Generate(ctx context.Context, prompt string, maxTokens int) string {
	if g.models == nil {
		return DemoText
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.GenerateText(ctx, prompt, maxTokens)
	if err != nil {
		g.logger.Warn("text generation failed, using fallback", zap.Error(err))
		return FallbackText
	}
	return text
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if g.models == nil {
		return "", ErrAIUnavailable
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	temperature := float32(0.7)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(maxTokens),
	}
	if budget, ok := thinkingBudget(g.modelName); ok {
		// Thinking tokens count against MaxOutputTokens, so the budget sits on
		// top of the reply allowance instead of eating into it.
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(budget)}
		cfg.MaxOutputTokens += budget
	}

	g.logger.Debug("gemini generate content request",
		zap.String("ai_model", g.modelName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, logPreviewLength)),
	)

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("no text content in response")
	}

	g.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", logger.TruncateForLog(text, logPreviewLength)),
	)

	return text, nil
}

// GenerateEmbedding implements Embedder.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if g.models == nil {
		return nil, ErrAIUnavailable
	}

	if len(text) > maxEmbedChars {
		text = strings.ToValidUTF8(text[:maxEmbedChars], "")
	}

	result, err := g.models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, errors.New("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

// thinkingBudget reports the thinking budget to request for model. Models
// without thinking report false and get no ThinkingConfig.
func thinkingBudget(model string) (int32, bool) {
	model = strings.ToLower(strings.TrimPrefix(model, "models/"))
	switch {
	case strings.HasPrefix(model, "gemini-2.5-pro"):
		return minProThinkingBudget, true
	case strings.HasPrefix(model, "gemini-2.5-flash"):
		return 0, true
	default:
		return 0, false
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
