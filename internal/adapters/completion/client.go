// Package completion is a chat-completions client for OpenRouter-compatible
// APIs. Callers treat any error as a signal to fall back to their built-in
// behavior; the client never retries.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/grandstand/pkg/logger"
	"github.com/okian/grandstand/pkg/metrics"
)

// Defaults applied when a Request leaves fields unset.
const (
	defaultModel       = "openai/gpt-3.5-turbo"
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultTimeout     = 30 * time.Second

	maxResponseBytes = 1 << 20
)

// Message is one chat turn sent to the API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one completion call. Zero-valued fields take the client
// defaults.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Client talks to a chat-completions endpoint. An empty API key disables the
// client; Complete then fails fast with ErrDisabled.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	model      string
	lg         logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithModel overrides the default model id.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger overrides the default named logger.
func WithLogger(lg logger.Logger) Option {
	return func(c *Client) {
		c.lg = lg
	}
}

// New builds a Client for the given endpoint. apiKey may be empty, producing
// a disabled client.
func New(url, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		url:        url,
		apiKey:     apiKey,
		model:      defaultModel,
		lg:         logger.Named("completion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether the client has credentials to call the API.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type apiRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one completion request and returns the assistant's text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	if req.Temperature == 0 {
		req.Temperature = defaultTemperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}
	msgs := make([]Message, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, Message{Role: "system", Content: req.System})
	}
	msgs = append(msgs, req.Messages...)

	body, err := json.Marshal(apiRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordCompletionRequest("error")
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordCompletionLatency(float64(time.Since(start).Milliseconds()))

	if resp.StatusCode != http.StatusOK {
		metrics.RecordCompletionRequest("error")
		c.lg.Warn(ctx, "completion API returned non-200",
			logger.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("%w: status %d", ErrBadStatus, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		metrics.RecordCompletionRequest("error")
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		metrics.RecordCompletionRequest("error")
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		metrics.RecordCompletionRequest("error")
		return "", ErrEmptyResponse
	}

	metrics.RecordCompletionRequest("success")
	return parsed.Choices[0].Message.Content, nil
}
