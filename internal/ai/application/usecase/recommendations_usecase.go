package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// RecommendationsService реализует RecommendationsUseCase
type RecommendationsService struct {
	catalog out.CatalogReader
	log     *logger.Logger
}

// NewRecommendationsService создает новый сервис рекомендаций водителей
func NewRecommendationsService(catalog out.CatalogReader, log *logger.Logger) *RecommendationsService {
	return &RecommendationsService{
		catalog: catalog,
		log:     log,
	}
}

// Execute подбирает до трех водителей под текстовые предпочтения пользователя.
// Пустые предпочтения допустимы: ранжирование идет по рейтингу и опыту.
func (s *RecommendationsService) Execute(ctx context.Context, input in.RecommendationsInput) ([]domain.Recommendation, error) {
	drivers, err := s.catalog.ListDriverProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	recommendations := domain.RecommendDrivers(input.UserID, input.Preferences, drivers)

	s.log.Info(logger.Entry{
		Action:  "drivers_recommended",
		Message: "driver recommendations built",
		Additional: map[string]interface{}{
			"user_id":    input.UserID,
			"candidates": len(drivers),
			"matches":    len(recommendations),
		},
	})

	return recommendations, nil
}
