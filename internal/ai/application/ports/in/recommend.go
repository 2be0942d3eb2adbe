package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// RecommendationsInput — входные данные подбора водителей
type RecommendationsInput struct {
	UserID      string
	Preferences string
}

// RecommendationsUseCase — интерфейс use case рекомендаций водителей
type RecommendationsUseCase interface {
	Execute(ctx context.Context, input RecommendationsInput) ([]domain.Recommendation, error)
}
