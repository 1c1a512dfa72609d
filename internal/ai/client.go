package ai

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

// ErrRateLimited marks upstream quota/rate-limit responses so handlers
// can answer them distinctly from generic provider failures.
var ErrRateLimited = errors.New("ai provider rate limited")

type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatResponse struct {
	Choices []ChatChoice `json:"choices"`
	Error   *APIError    `json:"error,omitempty"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ImageRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size,omitempty"`
}

type ImageResponse struct {
	Data  []ImageData `json:"data"`
	Error *APIError   `json:"error,omitempty"`
}

type ImageData struct {
	URL string `json:"url"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends one system+user exchange and returns the assistant text.
// jsonMode asks the provider for a JSON-object response.
func (c *Client) Complete(ctx context.Context, system, user string, jsonMode bool) (string, error) {
	reqBody := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonMode {
		reqBody.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}

	if chatResp.Error != nil {
		if isQuotaError(chatResp.Error) {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("provider error: %s", chatResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if len(chatResp.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// GenerateImage asks the images endpoint for one rendering of the prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	reqBody := ImageRequest{
		Prompt: prompt,
		N:      1,
		Size:   "1024x1024",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/images/generations",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrRateLimited
	}

	var imgResp ImageResponse
	if err := json.Unmarshal(body, &imgResp); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}

	if imgResp.Error != nil {
		if isQuotaError(imgResp.Error) {
			return "", ErrRateLimited
		}
		return "", fmt.Errorf("provider error: %s", imgResp.Error.Message)
	}

	if len(imgResp.Data) == 0 {
		return "", errors.New("provider returned no image")
	}

	return imgResp.Data[0].URL, nil
}

func isQuotaError(e *APIError) bool {
	if e.Type == "insufficient_quota" {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit")
}

// stripFences removes the markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
