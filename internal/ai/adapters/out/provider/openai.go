// Package provider содержит HTTP-клиенты внешних генеративных провайдеров.
// Клиенты намеренно без SDK: только chat-completion без стриминга.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
)

const openaiBaseURL = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider — клиент OpenAI Chat Completions API
type OpenAIProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type openaiRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens,omitempty"`
	Temperature float64              `json:"temperature,omitempty"`
}

type openaiResponse struct {
	Choices []struct {
		Message domain.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOpenAIProvider создает клиент OpenAI из конфига
func NewOpenAIProvider(cfg config.AIConfig) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  cfg.OpenAIKey,
		model:   cfg.OpenAIModel,
		baseURL: openaiBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
		},
	}
}

// Name возвращает имя провайдера
func (p *OpenAIProvider) Name() string { return "openai" }

// Configured сообщает, задан ли API-ключ
func (p *OpenAIProvider) Configured() bool { return p.apiKey != "" }

// Generate отправляет диалог в Chat Completions и возвращает текст первого choice
func (p *OpenAIProvider) Generate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	body, err := json.Marshal(openaiRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed openaiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai api error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, string(respBody))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
