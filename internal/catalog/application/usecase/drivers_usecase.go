package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// ListDriversService реализует ListDriversUseCase
type ListDriversService struct {
	driverRepo out.DriverRepository
}

// NewListDriversService создает сервис списка водителей
func NewListDriversService(driverRepo out.DriverRepository) *ListDriversService {
	return &ListDriversService{driverRepo: driverRepo}
}

// Execute возвращает страницу списка водителей
func (s *ListDriversService) Execute(ctx context.Context, input in.ListDriversInput) (*in.ListDriversOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	drivers, total, err := s.driverRepo.List(ctx, out.DriverFilters{
		AvailableOnly: input.AvailableOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	return &in.ListDriversOutput{Drivers: drivers, Total: total}, nil
}

// GetDriverService реализует GetDriverUseCase
type GetDriverService struct {
	driverRepo out.DriverRepository
}

// NewGetDriverService создает сервис получения водителя
func NewGetDriverService(driverRepo out.DriverRepository) *GetDriverService {
	return &GetDriverService{driverRepo: driverRepo}
}

// Execute возвращает водителя по ID
func (s *GetDriverService) Execute(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.driverRepo.FindByID(ctx, driverID)
}
