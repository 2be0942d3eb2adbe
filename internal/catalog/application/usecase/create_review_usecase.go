package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/utils"
)

// CreateReviewService реализует CreateReviewUseCase
type CreateReviewService struct {
	reviewRepo out.ReviewRepository
	carRepo    out.CarRepository
	driverRepo out.DriverRepository
	publisher  out.ReviewEventPublisher
	log        *logger.Logger
}

// NewCreateReviewService создает сервис создания отзывов
func NewCreateReviewService(
	reviewRepo out.ReviewRepository,
	carRepo out.CarRepository,
	driverRepo out.DriverRepository,
	publisher out.ReviewEventPublisher,
	log *logger.Logger,
) *CreateReviewService {
	return &CreateReviewService{
		reviewRepo: reviewRepo,
		carRepo:    carRepo,
		driverRepo: driverRepo,
		publisher:  publisher,
		log:        log,
	}
}

// Execute сохраняет отзыв и публикует событие review.created
func (s *CreateReviewService) Execute(ctx context.Context, input in.CreateReviewInput) (*in.CreateReviewOutput, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, domain.ErrEmptyComment
	}
	if input.CarID == "" && input.DriverID == "" {
		return nil, domain.ErrReviewTargetMissing
	}

	// Проверяем, что указанные машина/водитель существуют
	if input.CarID != "" {
		if _, err := s.carRepo.FindByID(ctx, input.CarID); err != nil {
			return nil, err
		}
	}
	if input.DriverID != "" {
		if _, err := s.driverRepo.FindByID(ctx, input.DriverID); err != nil {
			return nil, err
		}
	}

	review := &domain.Review{
		ID:        utils.NewUUID(),
		UserID:    input.UserID,
		CarID:     input.CarID,
		DriverID:  input.DriverID,
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		City:      input.City,
		State:     input.State,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, domain.ErrDuplicateReview) {
			return nil, err
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Публикуем событие; пересчет рейтинга делает консьюмер review.created.
	// Отзыв уже сохранен, поэтому ошибку публикации только логируем.
	event := out.ReviewCreatedEvent{
		ReviewID:  review.ID,
		UserID:    review.UserID,
		CarID:     review.CarID,
		DriverID:  review.DriverID,
		BookingID: review.BookingID,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
	if err := s.publisher.PublishReviewCreated(ctx, event); err != nil {
		s.log.Error(logger.Entry{
			Action:  "publish_review_created_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]interface{}{
				"review_id": review.ID,
			},
		})
	}

	s.log.Info(logger.Entry{
		Action:  "review_created",
		Message: fmt.Sprintf("review %s created", review.ID),
		Additional: map[string]interface{}{
			"review_id": review.ID,
			"car_id":    review.CarID,
			"driver_id": review.DriverID,
			"rating":    review.Rating,
		},
	})

	return &in.CreateReviewOutput{
		ReviewID:  review.ID,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}, nil
}
