package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// ListReviewsService реализует ListReviewsUseCase
type ListReviewsService struct {
	reviewRepo out.ReviewRepository
}

// NewListReviewsService создает сервис списка отзывов
func NewListReviewsService(reviewRepo out.ReviewRepository) *ListReviewsService {
	return &ListReviewsService{reviewRepo: reviewRepo}
}

// Execute возвращает отзывы по машине или водителю
func (s *ListReviewsService) Execute(ctx context.Context, input in.ListReviewsInput) (*in.ListReviewsOutput, error) {
	if input.CarID == "" && input.DriverID == "" {
		return nil, domain.ErrReviewTargetMissing
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	reviews, total, err := s.reviewRepo.List(ctx, out.ReviewFilters{
		CarID:    input.CarID,
		DriverID: input.DriverID,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return &in.ListReviewsOutput{Reviews: reviews, Total: total}, nil
}
