package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-coach/internal/models"
	"fit-coach/pkg/logger"
)

type stubCompleter struct {
	response openai.ChatCompletionResponse
	err      error
	requests []openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.requests = append(s.requests, req)
	return s.response, s.err
}

func testUser() *models.User {
	return &models.User{
		ID:            42,
		Username:      "ivan",
		Age:           25,
		WeightKg:      75,
		HeightCm:      180,
		Gender:        "male",
		Goal:          "get stronger",
		ActivityLevel: 3,
		LevelInfo: &models.ActivityLevel{
			Level:       3,
			Name:        "Умеренная активность",
			Description: "Тренировки 3-4 раза в неделю",
		},
	}
}

func newTestClient(stub *stubCompleter) *Client {
	return &Client{client: stub, model: "test-model", logger: logger.NewDevelopment()}
}

func TestGenerateAnswer(t *testing.T) {
	stub := &stubCompleter{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "пей больше воды"}},
			},
		},
	}
	client := newTestClient(stub)

	answer, err := client.GenerateAnswer(context.Background(), testUser(), "что пить на тренировке?")
	require.NoError(t, err)
	assert.Equal(t, "пей больше воды", answer)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	assert.Equal(t, "test-model", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "что пить на тренировке?")
	assert.Contains(t, req.Messages[0].Content, `"ivan"`)
	assert.Contains(t, req.Messages[0].Content, "Тренировки 3-4 раза в неделю")
}

func TestGeneratePlanEmbedsPreviousPlan(t *testing.T) {
	stub := &stubCompleter{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "новый план"}},
			},
		},
	}
	client := newTestClient(stub)

	user := testUser()
	user.TrainingPlan = &models.TrainingPlan{UserID: 42, PlanDescription: "старый план"}

	plan, err := client.GeneratePlan(context.Background(), user, "больше кардио")
	require.NoError(t, err)
	assert.Equal(t, "новый план", plan)
	assert.Contains(t, stub.requests[0].Messages[0].Content, "старый план")
	assert.Contains(t, stub.requests[0].Messages[0].Content, "больше кардио")
}

// An empty completion must surface as a distinct failure, not a
// placeholder string.
func TestEmptyCompletionIsGenerationFailed(t *testing.T) {
	stub := &stubCompleter{response: openai.ChatCompletionResponse{}}
	client := newTestClient(stub)

	_, err := client.GenerateAnswer(context.Background(), testUser(), "привет")
	assert.ErrorIs(t, err, models.ErrGenerationFailed)
}

func TestTransportFailureIsGenerationFailed(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	client := newTestClient(stub)

	_, err := client.GeneratePlan(context.Background(), testUser(), "")
	assert.ErrorIs(t, err, models.ErrGenerationFailed)
}

func TestPromptIsDeterministic(t *testing.T) {
	user := testUser()
	assert.Equal(t, PlanPrompt(user, "x"), PlanPrompt(user, "x"))
	assert.Equal(t, RequestPrompt(user, "y"), RequestPrompt(user, "y"))
}
