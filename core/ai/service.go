// ABOUTME: AI enrichment service for summaries and embeddings
// ABOUTME: Delegates to an OpenAI-compatible provider; failures degrade to nil

package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"searchlens-api/core/interfaces"
	"searchlens-api/pkg/config"
	"searchlens-api/pkg/textutil"
)

const (
	// maxSummaryInputChars caps content sent for summarization
	maxSummaryInputChars = 3000

	// maxEmbeddingInputChars caps text sent for embedding
	maxEmbeddingInputChars = 8000

	summarySystemPrompt = "You are a helpful assistant that creates concise, accurate summaries of articles and web content."
)

// Service implements the AIProvider interface against an OpenAI-compatible
// backend. Every failure degrades to nil so AI problems never abort a
// search request.
type Service struct {
	client         *openai.Client
	logger         interfaces.Logger
	summaryModel   string
	embeddingModel string
}

// NewService creates an AI service from configuration.
// Returns nil when no API key is configured; callers treat a nil provider
// as "AI features disabled".
func NewService(cfg config.AIConfig, logger interfaces.Logger) *Service {
	if cfg.APIKey == "" {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Service{
		client:         openai.NewClientWithConfig(clientCfg),
		logger:         logger,
		summaryModel:   cfg.SummaryModel,
		embeddingModel: cfg.EmbeddingModel,
	}
}

// Summarize produces a 2-3 sentence summary of the content, or nil on any
// provider failure.
func (s *Service) Summarize(ctx context.Context, title, content string) *string {
	truncated := content
	if len(truncated) > maxSummaryInputChars {
		truncated = textutil.Truncate(truncated, maxSummaryInputChars) + "..."
	}

	prompt := fmt.Sprintf(
		"Summarize the following article in 2-3 concise sentences. Focus on the main points and key takeaways.\n\nTitle: %s\n\nContent:\n%s\n\nSummary:",
		title, truncated,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.summaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   150,
		Temperature: 0.3,
	})
	if err != nil {
		s.logger.Warn("summary generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return nil
	}
	return &summary
}

// Embed produces a vector embedding for the text, or nil on any provider
// failure.
func (s *Service) Embed(ctx context.Context, text string) []float32 {
	text = textutil.Truncate(text, maxEmbeddingInputChars)

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(s.embeddingModel),
	})
	if err != nil {
		s.logger.Warn("embedding generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if len(resp.Data) == 0 {
		return nil
	}

	return resp.Data[0].Embedding
}
