// Package genai is the boundary to the external text-generation service.
// It speaks the OpenAI-compatible chat-completions wire format and exposes
// nothing of it to callers beyond Generate(prompt) -> text.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
)

const systemInstruction = "You are a senior medical registrar drafting formal hospital " +
	"discharge and death summaries. Expand the structured case notes you are given into " +
	"a complete, professionally worded summary document. Use only the information " +
	"provided; do not invent clinical findings, dates, or results."

// Generator turns a prompt into generated text. Implementations must not
// retry internally; a single upstream failure surfaces to the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *apiError    `json:"error,omitempty"`
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) { g.httpClient = c }
}

func NewClient(baseURL, apiKey, model string, maxTokens int, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate sends the prompt as a role-tagged message list and returns the
// first choice's content. Any shape mismatch in the response is an upstream
// error; nothing is retried here.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("marshal generation request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("build generation request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.Upstream("text generation service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperror.Upstream("read generation response", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", apperror.Upstream("text generation service returned malformed response", err)
	}

	if parsed.Error != nil {
		return "", apperror.Upstream("text generation service error",
			fmt.Errorf("%s: %s", parsed.Error.Type, parsed.Error.Message))
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperror.Upstream("text generation service error",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", apperror.Upstream("text generation service returned no content", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}
