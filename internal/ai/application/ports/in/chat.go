package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// ChatInput — сообщение пользователя и история диалога с клиента
type ChatInput struct {
	Message string
	History []domain.ChatMessage
}

// ChatOutput — ответ чат-бота. Provider — имя ответившего провайдера
// или "local", если сработал локальный fallback.
type ChatOutput struct {
	Reply    string `json:"response"`
	Provider string `json:"-"`
	Local    bool   `json:"usingLocalAI"`
}

// ChatUseCase — интерфейс use case чат-бота
type ChatUseCase interface {
	Execute(ctx context.Context, input ChatInput) (*ChatOutput, error)
}
