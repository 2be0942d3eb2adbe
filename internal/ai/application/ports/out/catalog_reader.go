package out

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// CatalogReader — доступ AI-сервиса к данным каталога. Только чтение:
// каталогом владеет marketplace-сервис.
type CatalogReader interface {
	// GetDriver возвращает водителя или domain.ErrDriverNotFound
	GetDriver(ctx context.Context, driverID string) (*domain.DriverRef, error)
	// ListDriverReviews возвращает отзывы водителя, новые первыми
	ListDriverReviews(ctx context.Context, driverID string) ([]domain.ReviewInput, error)
	// ListDriverProfiles возвращает доступных водителей для рекомендаций
	ListDriverProfiles(ctx context.Context) ([]domain.DriverProfile, error)
	// ListCarSummaries возвращает доступные машины для контекста ассистента
	ListCarSummaries(ctx context.Context) ([]domain.CarSummary, error)
	// ListDriverSummaries возвращает доступных водителей для контекста ассистента
	ListDriverSummaries(ctx context.Context) ([]domain.DriverSummary, error)
}
