package llm

import (
	"HeidiCore/internal/api/config"
	"context"
	"errors"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

// ErrNotConfigured is returned when the three required Azure OpenAI secrets
// are not all present. It is distinguished from transient upstream failures.
var ErrNotConfigured = errors.New("Azure OpenAI is not configured. Set AZURE_OPENAI_API_KEY, AZURE_OPENAI_ENDPOINT, and AZURE_OPENAI_DEPLOYMENT_NAME in Secrets")

// Client is the generation proxy: a thin pass-through to the Azure OpenAI
// chat completions deployment. Constructed once at startup and injected.
type Client struct {
	model      llms.Model
	deployment string
	configured bool
	sem        *semaphore.Weighted
}

// New builds the client. Missing credentials do not fail startup; the client
// reports unconfigured and every generation call errors until the secrets are
// set.
func New(cfg config.LLMConfig) (*Client, error) {
	c := &Client{
		deployment: cfg.Deployment,
		sem:        newChatSem(),
	}

	if cfg.APIKey == "" || cfg.Endpoint == "" || cfg.Deployment == "" {
		log.Warn("Azure OpenAI credentials missing, generation endpoints disabled")
		return c, nil
	}

	model, err := openai.New(
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.Endpoint),
		openai.WithModel(cfg.Deployment),
		openai.WithAPIVersion(cfg.APIVersion),
	)
	if err != nil {
		return nil, err
	}

	c.model = model
	c.configured = true

	log.Info("Azure OpenAI initialized successfully", "deployment", cfg.Deployment)
	return c, nil
}

// Configured reports whether all required credentials are present.
func (c *Client) Configured() bool {
	return c.configured
}

// Chat sends a system + user prompt pair to the deployment and returns the
// raw generated text unmodified. No retries; upstream failures propagate.
func (c *Client) Chat(ctx context.Context, systemPrompt string, userPrompt string, temperature float64) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer c.sem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(1024),
	)
	if err != nil {
		log.ErrorContext(ctx, "Azure OpenAI request failed", "err", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Content, nil
}
