package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/DSado88/Grocery/internal/pkg/common"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an HTTP-backed alternative to the subprocess
// assistant for environments without the CLI installed. The API is
// stateless, so each session keeps its own message history.
type OpenRouterProvider struct {
	APIKey    string
	Model     string
	MaxTokens int

	client *resty.Client
}

// NewOpenRouterProvider builds a provider for the given credentials.
func NewOpenRouterProvider(apiKey, model string, maxTokens int) *OpenRouterProvider {
	client := resty.New().
		SetBaseURL(openRouterBaseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("X-Title", "Cart Blanche")

	return &OpenRouterProvider{
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
		client:    client,
	}
}

// NewSession creates a session seeded with the system prompt.
func (p *OpenRouterProvider) NewSession(ctx context.Context, opts Options) (Session, error) {
	session := &openRouterSession{
		id:       common.GenerateUUID(),
		provider: p,
	}
	if opts.AppendSystemPrompt != "" {
		session.history = append(session.history, orMessage{
			Role:    "system",
			Content: opts.AppendSystemPrompt,
		})
	}
	if opts.Model != "" {
		session.model = opts.Model
	} else {
		session.model = p.Model
	}
	return session, nil
}

type orMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterSession struct {
	id       string
	provider *OpenRouterProvider
	model    string
	history  []orMessage
}

func (s *openRouterSession) ID() string {
	return s.id
}

// Send posts the full history plus the new message and streams the
// single response back as one chunk.
func (s *openRouterSession) Send(ctx context.Context, message string) (<-chan Chunk, error) {
	history := append(s.history, orMessage{Role: "user", Content: message})

	req := map[string]any{
		"model":    s.model,
		"messages": history,
	}
	if s.provider.MaxTokens > 0 {
		req["max_tokens"] = s.provider.MaxTokens
	}

	resp, err := s.provider.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter API error",
			zap.Int("status", resp.StatusCode()),
			zap.String("session_id", s.id),
		)
		return nil, fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenRouter response")
	}

	reply := result.Choices[0].Message.Content
	s.history = append(history, orMessage{Role: "assistant", Content: reply})

	chunks := make(chan Chunk, 2)
	chunks <- Chunk{Text: reply}
	chunks <- Chunk{Final: true}
	close(chunks)
	return chunks, nil
}

func (s *openRouterSession) Close() error {
	return nil
}
