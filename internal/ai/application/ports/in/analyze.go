package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// AnalyzeReviewInput — входные данные анализа отзыва
type AnalyzeReviewInput struct {
	Review   string
	DriverID string
}

// AnalyzeReviewUseCase — интерфейс use case анализа отзыва
type AnalyzeReviewUseCase interface {
	Execute(ctx context.Context, input AnalyzeReviewInput) (*domain.AnalysisResult, error)
}
