package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
)

// ListDriversInput — фильтры списка водителей
type ListDriversInput struct {
	AvailableOnly bool
	Limit         int
	Offset        int
}

// ListDriversOutput — страница списка водителей
type ListDriversOutput struct {
	Drivers []*domain.Driver `json:"drivers"`
	Total   int              `json:"total"`
}

// ListDriversUseCase — интерфейс use case получения списка водителей
type ListDriversUseCase interface {
	Execute(ctx context.Context, input ListDriversInput) (*ListDriversOutput, error)
}

// GetDriverUseCase — интерфейс use case получения одного водителя
type GetDriverUseCase interface {
	Execute(ctx context.Context, driverID string) (*domain.Driver, error)
}
