package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// ListCarsInput — фильтры каталога машин
type ListCarsInput struct {
	Type   string // фильтр по типу кузова
	Search string // поиск по name/brand/model (substring, case-insensitive)
	Limit  int
	Offset int
}

// ListCarsOutput — страница каталога
type ListCarsOutput struct {
	Cars  []*domain.Car `json:"cars"`
	Total int           `json:"total"`
}

// ListCarsUseCase — интерфейс use case получения каталога машин
type ListCarsUseCase interface {
	Execute(ctx context.Context, input ListCarsInput) (*ListCarsOutput, error)
}

// GetCarUseCase — интерфейс use case получения одной машины
type GetCarUseCase interface {
	Execute(ctx context.Context, carID string) (*domain.Car, error)
}
