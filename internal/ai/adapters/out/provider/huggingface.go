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

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models"

// HuggingFaceProvider — клиент HuggingFace Inference API.
// Диалог форматируется в инструкционный промпт [INST] для Mistral-подобных
// моделей; ответ приходит массивом с generated_text.
type HuggingFaceProvider struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type huggingFaceRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters huggingFaceParameters  `json:"parameters"`
	Options    map[string]interface{} `json:"options,omitempty"`
}

type huggingFaceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type huggingFaceGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type huggingFaceError struct {
	Error string `json:"error"`
}

// NewHuggingFaceProvider создает клиент HuggingFace из конфига
func NewHuggingFaceProvider(cfg config.AIConfig) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		apiKey:  cfg.HuggingFaceKey,
		model:   cfg.HuggingFaceModel,
		baseURL: huggingFaceBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutMS) * time.Millisecond,
		},
	}
}

// Name возвращает имя провайдера
func (p *HuggingFaceProvider) Name() string { return "huggingface" }

// Configured сообщает, задан ли API-ключ
func (p *HuggingFaceProvider) Configured() bool { return p.apiKey != "" }

// Generate форматирует диалог в промпт и запрашивает text-generation
func (p *HuggingFaceProvider) Generate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	body, err := json.Marshal(huggingFaceRequest{
		Inputs: buildInstructPrompt(messages),
		Parameters: huggingFaceParameters{
			MaxNewTokens:   500,
			Temperature:    0.7,
			ReturnFullText: false,
		},
		Options: map[string]interface{}{"wait_for_model": true},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.baseURL + "/" + p.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr huggingFaceError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface api error: %s", apiErr.Error)
		}
		return "", fmt.Errorf("huggingface status %d: %s", resp.StatusCode, string(respBody))
	}

	var generations []huggingFaceGeneration
	if err := json.Unmarshal(respBody, &generations); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("huggingface returned no generations")
	}

	return strings.TrimSpace(generations[0].GeneratedText), nil
}

// buildInstructPrompt сворачивает диалог в формат [INST] ... [/INST]
func buildInstructPrompt(messages []domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString("<s>")
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem, domain.RoleUser:
			b.WriteString("[INST] " + m.Content + " [/INST]")
		case domain.RoleAssistant:
			b.WriteString(" " + m.Content + " ")
		}
	}
	return b.String()
}
