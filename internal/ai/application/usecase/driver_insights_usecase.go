package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// DriverInsightsService реализует DriverInsightsUseCase
type DriverInsightsService struct {
	catalog out.CatalogReader
	lexicon *domain.Lexicon
	log     *logger.Logger
}

// NewDriverInsightsService создает новый сервис инсайтов по водителю
func NewDriverInsightsService(catalog out.CatalogReader, lexicon *domain.Lexicon, log *logger.Logger) *DriverInsightsService {
	return &DriverInsightsService{
		catalog: catalog,
		lexicon: lexicon,
		log:     log,
	}
}

// Execute агрегирует отзывы водителя в общий балл и разбивку по категориям.
// Если отзывов еще нет, анализ строится на синтетических примерах и ответ
// помечается флагом sampleData.
func (s *DriverInsightsService) Execute(ctx context.Context, driverID string) (*in.DriverInsightsOutput, error) {
	driver, err := s.catalog.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	reviews, err := s.catalog.ListDriverReviews(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	sampleData := false
	if len(reviews) == 0 {
		reviews = domain.SampleReviews()
		sampleData = true
	}

	insights := s.lexicon.DriverInsights(driverID, reviews)

	s.log.Info(logger.Entry{
		Action:  "driver_insights_built",
		Message: "driver insights built",
		Additional: map[string]interface{}{
			"driver_id":     driverID,
			"review_count":  len(reviews),
			"overall_score": insights.OverallScore,
			"sample_data":   sampleData,
		},
	})

	return &in.DriverInsightsOutput{
		DriverID:   driver.ID,
		DriverName: driver.Name,
		Insights:   insights,
		SampleData: sampleData,
	}, nil
}
