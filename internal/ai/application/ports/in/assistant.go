package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// AssistantInput — вопрос ассистенту и флаги подгрузки контекста каталога
type AssistantInput struct {
	Query             string
	IncludeCarInfo    bool
	IncludeDriverInfo bool
}

// AssistantUseCase — интерфейс use case ассистента по каталогу
type AssistantUseCase interface {
	Execute(ctx context.Context, input AssistantInput) (*domain.AssistantResponse, error)
}
