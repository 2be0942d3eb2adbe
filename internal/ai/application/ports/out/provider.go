package out

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// Provider — внешний генеративный провайдер. Generate отправляет весь
// диалог (включая системный промпт) и возвращает текст ответа.
// Пустой ответ без ошибки тоже считается отказом провайдера.
type Provider interface {
	// Name возвращает имя провайдера для логов ("openai", "gemini", ...)
	Name() string
	// Configured сообщает, задан ли API-ключ провайдера
	Configured() bool
	// Generate запрашивает ответ модели на диалог
	Generate(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
