package usecase

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
)

// ListUserBookingsService реализует ListUserBookingsUseCase
type ListUserBookingsService struct {
	bookingRepo out.BookingRepository
}

// NewListUserBookingsService создает сервис списка бронирований
func NewListUserBookingsService(bookingRepo out.BookingRepository) *ListUserBookingsService {
	return &ListUserBookingsService{bookingRepo: bookingRepo}
}

// Execute возвращает бронирования пользователя
func (s *ListUserBookingsService) Execute(ctx context.Context, userID string) (*in.ListUserBookingsOutput, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	return &in.ListUserBookingsOutput{Bookings: bookings}, nil
}
