// Package llm provides a minimal client for OpenAI-compatible chat
// completion endpoints. The engine treats the model as an external
// collaborator: it sends one prompt and returns the raw text completion.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrCompletion indicates the completion request failed.
var ErrCompletion = errors.New("llm: completion failed")

// HTTPDoer defines the HTTP operations required by Client.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls an OpenAI-compatible /chat/completions endpoint.
type Client struct {
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	httpClient  HTTPDoer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. If d is nil, the default is left unchanged.
func WithHTTPClient(d HTTPDoer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithTemperature sets the sampling temperature (default 0.8).
func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

// New creates a Client for the given endpoint and model.
func New(baseURL, model, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("llm: base URL must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("llm: model must not be empty")
	}
	c := &Client{
		baseURL:     baseURL,
		model:       model,
		apiKey:      apiKey,
		temperature: 0.8,
		httpClient:  &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends prompt as a single user message and returns the text of the
// first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %w", ErrCompletion, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrCompletion, err)
	}
	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrCompletion, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("%w: %s: %s", ErrCompletion, resp.Status, parsed.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", ErrCompletion, resp.Status)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrCompletion)
	}
	return parsed.Choices[0].Message.Content, nil
}
