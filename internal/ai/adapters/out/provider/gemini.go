package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/config"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiProvider — клиент Google Gemini generateContent API.
// Gemini не принимает роль system, поэтому весь диалог сплющивается
// в один текстовый промпт.
type GeminiProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewGeminiProvider создает клиент Gemini из конфига
func NewGeminiProvider(cfg config.AIConfig) *GeminiProvider {
	return &GeminiProvider{
		apiKey:  cfg.GeminiKey,
		model:   cfg.GeminiModel,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
		},
	}
}

// Name возвращает имя провайдера
func (p *GeminiProvider) Name() string { return "gemini" }

// Configured сообщает, задан ли API-ключ
func (p *GeminiProvider) Configured() bool { return p.apiKey != "" }

// Generate сплющивает диалог в один промпт и запрашивает generateContent
func (p *GeminiProvider) Generate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	var prompt strings.Builder
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			prompt.WriteString(m.Content)
			prompt.WriteString("\n\n")
		case domain.RoleUser:
			prompt.WriteString("User: " + m.Content + "\n")
		case domain.RoleAssistant:
			prompt.WriteString("Assistant: " + m.Content + "\n")
		}
	}
	prompt.WriteString("Assistant:")

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt.String()}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, string(respBody))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
