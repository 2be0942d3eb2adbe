package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

const defaultPageSize = 50

// ListCarsService реализует ListCarsUseCase
type ListCarsService struct {
	carRepo out.CarRepository
	log     *logger.Logger
}

// NewListCarsService создает сервис каталога машин
func NewListCarsService(carRepo out.CarRepository, log *logger.Logger) *ListCarsService {
	return &ListCarsService{carRepo: carRepo, log: log}
}

// Execute возвращает страницу каталога с фильтрами
func (s *ListCarsService) Execute(ctx context.Context, input in.ListCarsInput) (*in.ListCarsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	cars, total, err := s.carRepo.List(ctx, out.CarFilters{
		Type:   input.Type,
		Search: input.Search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	return &in.ListCarsOutput{Cars: cars, Total: total}, nil
}

// GetCarService реализует GetCarUseCase
type GetCarService struct {
	carRepo out.CarRepository
}

// NewGetCarService создает сервис получения машины
func NewGetCarService(carRepo out.CarRepository) *GetCarService {
	return &GetCarService{carRepo: carRepo}
}

// Execute возвращает машину по ID
func (s *GetCarService) Execute(ctx context.Context, carID string) (*domain.Car, error) {
	return s.carRepo.FindByID(ctx, carID)
}
