package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// CreateReviewInput — входные данные для создания отзыва
type CreateReviewInput struct {
	UserID    string
	CarID     string
	DriverID  string
	BookingID string
	Rating    int // 1-5
	Comment   string
	City      string
	State     string
}

// CreateReviewOutput — результат создания отзыва
type CreateReviewOutput struct {
	ReviewID  string `json:"review_id"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"` // ISO8601
}

// CreateReviewUseCase — интерфейс use case создания отзыва
type CreateReviewUseCase interface {
	Execute(ctx context.Context, input CreateReviewInput) (*CreateReviewOutput, error)
}

// ListReviewsInput — фильтры списка отзывов (ровно один из CarID/DriverID)
type ListReviewsInput struct {
	CarID    string
	DriverID string
	Limit    int
	Offset   int
}

// ListReviewsOutput — страница отзывов
type ListReviewsOutput struct {
	Reviews []*domain.Review `json:"reviews"`
	Total   int              `json:"total"`
}

// ListReviewsUseCase — интерфейс use case получения отзывов
type ListReviewsUseCase interface {
	Execute(ctx context.Context, input ListReviewsInput) (*ListReviewsOutput, error)
}

// RecalcRatingUseCase — пересчет рейтинга машины/водителя после нового отзыва.
// Вызывается консьюмером очереди review.created.
type RecalcRatingUseCase interface {
	Execute(ctx context.Context, carID, driverID string) error
}
