package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// RecalcRatingService реализует RecalcRatingUseCase.
// Рейтинг хранится в шкале 0-500: округленное среднее 1-5, умноженное на 100.
type RecalcRatingService struct {
	reviewRepo out.ReviewRepository
	carRepo    out.CarRepository
	driverRepo out.DriverRepository
	log        *logger.Logger
}

// NewRecalcRatingService создает сервис пересчета рейтинга
func NewRecalcRatingService(
	reviewRepo out.ReviewRepository,
	carRepo out.CarRepository,
	driverRepo out.DriverRepository,
	log *logger.Logger,
) *RecalcRatingService {
	return &RecalcRatingService{
		reviewRepo: reviewRepo,
		carRepo:    carRepo,
		driverRepo: driverRepo,
		log:        log,
	}
}

// Execute пересчитывает рейтинг машины и/или водителя по всем их отзывам
func (s *RecalcRatingService) Execute(ctx context.Context, carID, driverID string) error {
	if carID != "" {
		stats, err := s.reviewRepo.RatingStatsForCar(ctx, carID)
		if err != nil {
			return fmt.Errorf("rating stats for car %s: %w", carID, err)
		}
		if err := s.carRepo.UpdateRating(ctx, carID, stats.StoredRating(), stats.Count); err != nil {
			return fmt.Errorf("update car rating: %w", err)
		}
		s.log.Info(logger.Entry{
			Action:  "car_rating_recalculated",
			Message: carID,
			Additional: map[string]interface{}{
				"rating":       stats.StoredRating(),
				"review_count": stats.Count,
			},
		})
	}

	if driverID != "" {
		stats, err := s.reviewRepo.RatingStatsForDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("rating stats for driver %s: %w", driverID, err)
		}
		if err := s.driverRepo.UpdateRating(ctx, driverID, stats.StoredRating()); err != nil {
			return fmt.Errorf("update driver rating: %w", err)
		}
		s.log.Info(logger.Entry{
			Action:  "driver_rating_recalculated",
			Message: driverID,
			Additional: map[string]interface{}{
				"rating":       stats.StoredRating(),
				"review_count": stats.Count,
			},
		})
	}

	return nil
}
