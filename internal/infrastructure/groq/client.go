// Package groq 提供 Groq Chat Completion API 客户端
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"blogforge-api/internal/config"
	apperrors "blogforge-api/pkg/errors"
)

// DefaultBaseURL Groq OpenAI 兼容接口地址
const DefaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"

// DefaultModel 默认模型
const DefaultModel = "llama-3.3-70b-versatile"

// 消息角色
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Client Groq 客户端
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// Message 对话消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewClient 创建 Groq 客户端
func NewClient(cfg *config.GroqConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 3000
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = 0.75
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete 执行一次对话补全，返回第一个候选的消息内容
// 上游非 200 响应会转换为携带相同状态码的 AppError
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody, err := json.Marshal(&chatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", apperrors.ErrUpstreamTimeout.WithError(err)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", upstreamError(httpResp.StatusCode, body)
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// upstreamError 将上游错误响应转换为 AppError
// 状态码原样透传，错误消息优先取上游 error.message
func upstreamError(status int, body []byte) *apperrors.AppError {
	message := "Groq API error"
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}
	return apperrors.NewWithStatus(apperrors.CodeUpstreamError, message, status)
}

// isTimeout 判断请求错误是否为超时
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
