package ai

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"fit-coach/internal/models"
	"fit-coach/pkg/logger"
)

// completer is the slice of the chat-completion API the client needs.
// *openai.Client satisfies it; tests substitute a stub.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	client completer
	model  string
	logger *logger.Logger
}

func NewClient(apiKey, baseURL, model string, l *logger.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: l,
	}
}

// createTextResponse sends a single user-role message and returns the
// completion text. An empty completion is a GenerationFailed condition,
// never a placeholder string.
func (c *Client) createTextResponse(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()
	c.logger.Infow("sending completion request", "request_id", requestID, "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		c.logger.Errorw("completion request failed", "request_id", requestID, "error", err)
		return "", fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Errorw("completion returned no usable text", "request_id", requestID)
		return "", models.ErrGenerationFailed
	}
	return resp.Choices[0].Message.Content, nil
}

// GeneratePlan produces a weekly training plan for the user. The user's
// previous plan, if any, is embedded into the prompt.
func (c *Client) GeneratePlan(ctx context.Context, user *models.User, extraRequest string) (string, error) {
	return c.createTextResponse(ctx, PlanPrompt(user, extraRequest))
}

// GenerateAnswer produces a conversational reply to the user's question.
func (c *Client) GenerateAnswer(ctx context.Context, user *models.User, request string) (string, error) {
	return c.createTextResponse(ctx, RequestPrompt(user, request))
}
