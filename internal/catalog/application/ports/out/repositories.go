package out

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// CarFilters — фильтры для выборки машин
type CarFilters struct {
	Type   string
	Search string
	Limit  int
	Offset int
}

// CarRepository — интерфейс репозитория машин
type CarRepository interface {
	// List возвращает машины с фильтрами и общее количество
	List(ctx context.Context, filters CarFilters) ([]*domain.Car, int, error)

	// FindByID находит машину по ID
	FindByID(ctx context.Context, carID string) (*domain.Car, error)

	// UpdateRating обновляет rating (0-500) и review_count
	UpdateRating(ctx context.Context, carID string, rating, reviewCount int) error

	// SetAvailability меняет доступность машины
	SetAvailability(ctx context.Context, carID string, available bool) error
}

// DriverFilters — фильтры для выборки водителей
type DriverFilters struct {
	AvailableOnly bool
	Limit         int
	Offset        int
}

// DriverRepository — интерфейс репозитория водителей
type DriverRepository interface {
	// List возвращает водителей с фильтрами и общее количество
	List(ctx context.Context, filters DriverFilters) ([]*domain.Driver, int, error)

	// FindByID находит водителя по ID
	FindByID(ctx context.Context, driverID string) (*domain.Driver, error)

	// UpdateRating обновляет rating (0-500)
	UpdateRating(ctx context.Context, driverID string, rating int) error
}

// ReviewFilters — фильтры для выборки отзывов
type ReviewFilters struct {
	CarID    string
	DriverID string
	Limit    int
	Offset   int
}

// ReviewRepository — интерфейс репозитория отзывов
type ReviewRepository interface {
	// Create сохраняет новый отзыв
	Create(ctx context.Context, review *domain.Review) error

	// List возвращает отзывы с фильтрами и общее количество
	List(ctx context.Context, filters ReviewFilters) ([]*domain.Review, int, error)

	// RatingStatsForCar возвращает count/sum рейтингов по машине
	RatingStatsForCar(ctx context.Context, carID string) (domain.RatingStats, error)

	// RatingStatsForDriver возвращает count/sum рейтингов по водителю
	RatingStatsForDriver(ctx context.Context, driverID string) (domain.RatingStats, error)
}
