package out

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
)

// BookingRepository — интерфейс репозитория бронирований
type BookingRepository interface {
	// Create создает новое бронирование
	Create(ctx context.Context, booking *domain.Booking) error

	// FindByID находит бронирование по ID
	FindByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListByUser возвращает бронирования пользователя (новые первыми)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)

	// UpdateStatus обновляет статус бронирования
	UpdateStatus(ctx context.Context, bookingID, status string) error
}
