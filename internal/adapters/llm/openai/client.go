// Package openai implements ports.Completer and ports.Moderator against
// an OpenAI-compatible API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/msull/emilytarot/internal/domain"
	"github.com/msull/emilytarot/internal/ports"
)

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		logger:     logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type moderationRequest struct {
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []struct {
		Flagged bool `json:"flagged"`
	} `json:"results"`
}

// Complete sends the ordered conversation and returns the reply text
// plus the token usage the API reported for the call.
func (c *Client) Complete(ctx context.Context, messages []ports.ChatMessage) (ports.Completion, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: make([]chatMessage, len(messages)),
	}
	for i, m := range messages {
		reqBody.Messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}

	respBody, err := c.post(ctx, "/chat/completions", reqBody)
	if err != nil {
		return ports.Completion{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return ports.Completion{}, fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamLLM, err)
	}
	if len(chatResp.Choices) == 0 {
		return ports.Completion{}, fmt.Errorf("%w: no choices in response", domain.ErrUpstreamLLM)
	}

	return ports.Completion{
		Text:   strings.TrimSpace(chatResp.Choices[0].Message.Content),
		Tokens: chatResp.Usage.TotalTokens,
	}, nil
}

// Moderate checks text against the moderation endpoint and reports
// whether it was flagged.
func (c *Client) Moderate(ctx context.Context, text string) (bool, error) {
	respBody, err := c.post(ctx, "/moderations", moderationRequest{Input: text})
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}

	var modResp moderationResponse
	if err := json.Unmarshal(respBody, &modResp); err != nil {
		return false, fmt.Errorf("%w: decode moderation response: %w", domain.ErrUpstreamLLM, err)
	}
	if len(modResp.Results) == 0 {
		return false, fmt.Errorf("%w: no results in moderation response", domain.ErrUpstreamLLM)
	}

	return modResp.Results[0].Flagged, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "upstream returned non-200", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
