package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// Generation parameters per call type. The look call is deterministic; the
// director call allows some creative freedom.
const (
	lookTemperature     = 0.0
	lookMaxTokens       = 1000
	directorTemperature = 0.3
	directorMaxTokens   = 500
)

// Config holds configuration for the LLM stylist client
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
}

// Client talks to an OpenAI-compatible chat completions API and turns free
// text into structured looks and director commands.
type Client struct {
	client      openai.Client
	model       string
	maxRetries  int
	rateLimiter *rate.Limiter
}

// NewClient creates a new LLM client
func NewClient(cfg Config) *Client {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	// Provider allows 30 requests per minute; keep a small burst for the
	// look + director pair a single page interaction issues.
	limiter := rate.NewLimiter(rate.Limit(0.5), 4)

	return &Client{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		maxRetries:  maxRetries,
		rateLimiter: limiter,
	}
}

// GenerateLook asks the stylist model for a structured outfit. Invalid or
// truncated completions are retried up to MaxRetries times; once retries are
// exhausted the fixed fallback look is returned instead of an error, so
// matching always has something to work with. Only context errors propagate.
func (c *Client) GenerateLook(ctx context.Context, userText string) (*domain.OutfitRequest, error) {
	for attempt := 1; attempt <= c.maxRetries+1; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		content, err := c.complete(ctx, lookSystemPrompt, userText, lookTemperature, lookMaxTokens)
		if err == nil {
			var look domain.OutfitRequest
			if err = json.Unmarshal([]byte(stripCodeFence(content)), &look); err == nil {
				return &look, nil
			}
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("look generation attempt failed")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt <= c.maxRetries {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
	}

	log.Warn().Str("query", userText).Msg("look generation exhausted retries, using fallback look")
	return FallbackLook(), nil
}

// ParseDirectorCommand turns a free-text director command into a structured
// scene configuration. Unlike GenerateLook there is no fallback; the caller
// keeps its current preset when this fails.
func (c *Client) ParseDirectorCommand(ctx context.Context, command string) (*domain.DirectorCommand, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	prompt := fmt.Sprintf(directorPromptFormat, command)
	content, err := c.complete(ctx, prompt, "", directorTemperature, directorMaxTokens)
	if err != nil {
		return nil, err
	}

	var cmd domain.DirectorCommand
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &cmd); err != nil {
		return nil, fmt.Errorf("decode director command: %w", err)
	}
	return &cmd, nil
}

// complete issues one chat completion and returns its trimmed content.
func (c *Client) complete(ctx context.Context, systemPrompt, userText string, temperature float64, maxTokens int64) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(systemPrompt),
				},
			},
		},
	}
	if userText != "" {
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(userText),
				},
			},
		})
	}

	response, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	return extractMessageContent(response)
}

// extractMessageContent validates the completion and returns its content.
func extractMessageContent(response *openai.ChatCompletion) (string, error) {
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("api returned no choices")
	}
	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("api returned empty content")
	}
	return content, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a json language tag, from a completion.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
	} else if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[idx+len("```"):]
	} else {
		return content
	}

	if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// FallbackLook is the fixed default outfit substituted when the model never
// produces a valid look.
func FallbackLook() *domain.OutfitRequest {
	return &domain.OutfitRequest{
		Sex:    "unisex",
		Top:    domain.ItemList{{Category: "shirt"}},
		Bottom: domain.ItemList{{Category: "pants"}},
		Shoes:  domain.ItemList{{Category: "sneakers"}},
	}
}
