// Package apiclient is the bot's HTTP client for the fit-coach API.
// HTTP statuses are translated back into the domain error kinds so the
// bot can branch on them explicitly.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fit-coach/internal/bot"
	"fit-coach/internal/models"
)

// The client is the production implementation of the bot's backend.
var _ bot.Backend = (*Client)(nil)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			// AI-backed endpoints can be slow
			Timeout: 120 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if err := errorFromStatus(resp.StatusCode, data); err != nil {
		return nil, err
	}
	return data, nil
}

// errorFromStatus mirrors the API's status mapping back into the
// domain taxonomy.
func errorFromStatus(status int, body []byte) error {
	switch {
	case status < 300:
		return nil
	case status == http.StatusNotFound:
		return models.ErrNotFound
	case status == http.StatusConflict:
		return models.ErrAlreadyExists
	case status == http.StatusBadGateway:
		return models.ErrGenerationFailed
	case status == http.StatusBadRequest:
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
			return models.NewValidationError("", envelope.Error)
		}
		return models.NewValidationError("", "validation failed")
	}
	return fmt.Errorf("api returned status %d: %s", status, body)
}

func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/get/%d", userID), nil)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, input *models.UserInput) error {
	_, err := c.do(ctx, http.MethodPost, "/user/create", input)
	return err
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, patch *models.UserUpdate) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/user/update/%d", userID), patch)
	return err
}

func (c *Client) GetActivityLevels(ctx context.Context) ([]models.ActivityLevel, error) {
	data, err := c.do(ctx, http.MethodGet, "/level/all", nil)
	if err != nil {
		return nil, err
	}
	var levels []models.ActivityLevel
	if err := json.Unmarshal(data, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (c *Client) GetUserPlan(ctx context.Context, userID int64) (string, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/plan/get/user/%d", userID), nil)
	if err != nil {
		return "", err
	}
	var plan models.TrainingPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return "", err
	}
	return plan.PlanDescription, nil
}

func (c *Client) GeneratePlan(ctx context.Context, userID int64, extraRequest string) error {
	_, err := c.do(ctx, http.MethodPost, "/plan/generate",
		&models.AIRequest{UserID: userID, Content: extraRequest})
	return err
}

func (c *Client) Chat(ctx context.Context, userID int64, message string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/user/chat",
		&models.AIRequest{UserID: userID, Content: message})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
