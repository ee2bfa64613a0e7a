package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrQuotaExceeded marks quota/rate-limit rejections. Callers depend on
// telling it apart from ErrClient to trigger the degraded-summary fallback.
var ErrQuotaExceeded error = errors.New("openai quota exceeded")
var ErrClient error = errors.New("openai request failed")

const systemPrompt = "You are a helpful assistant that explains Ethereum transactions simply."

type Client struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(httpClient HTTPClient, baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		client:  httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Summarize asks the model for a plain-English description of one
// transaction.
func (c *Client) Summarize(ctx context.Context, tx TransactionDetails) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fields, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("marshal transaction fields: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Summarize this Ethereum transaction in plain English: %s", fields)},
		},
		MaxTokens:   100,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrClient, err)
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", ErrClient, err)
	}

	if resp.StatusCode != http.StatusOK {
		if isQuotaError(resp.StatusCode, payload.Error) {
			return "", ErrQuotaExceeded
		}
		return "", fmt.Errorf("%w: unexpected status %d", ErrClient, resp.StatusCode)
	}

	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("%w: response contains no choices", ErrClient)
	}

	return payload.Choices[0].Message.Content, nil
}

func isQuotaError(status int, apiErr *apiError) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	if apiErr == nil {
		return false
	}
	if apiErr.Type == "insufficient_quota" {
		return true
	}
	if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
		return true
	}
	return strings.Contains(apiErr.Message, "quota")
}
