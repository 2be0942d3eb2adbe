package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// AnalyzeReviewService реализует AnalyzeReviewUseCase
type AnalyzeReviewService struct {
	catalog out.CatalogReader
	lexicon *domain.Lexicon
	log     *logger.Logger
}

// NewAnalyzeReviewService создает новый сервис анализа отзывов
func NewAnalyzeReviewService(catalog out.CatalogReader, lexicon *domain.Lexicon, log *logger.Logger) *AnalyzeReviewService {
	return &AnalyzeReviewService{
		catalog: catalog,
		lexicon: lexicon,
		log:     log,
	}
}

// Execute анализирует текст отзыва по словарю для указанного водителя.
// Пустой или пробельный текст — не ошибка: словарь дает нейтральный базовый результат.
func (s *AnalyzeReviewService) Execute(ctx context.Context, input in.AnalyzeReviewInput) (*domain.AnalysisResult, error) {
	driver, err := s.catalog.GetDriver(ctx, input.DriverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	result := s.lexicon.AnalyzeReview(input.Review, *driver)

	s.log.Info(logger.Entry{
		Action:  "review_analyzed",
		Message: "review analyzed",
		Additional: map[string]interface{}{
			"driver_id": driver.ID,
			"sentiment": result.SentimentScore,
		},
	})

	return &result, nil
}
