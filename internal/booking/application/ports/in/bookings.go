package in

import (
	"context"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
)

// CreateBookingInput — входные данные для создания бронирования
type CreateBookingInput struct {
	UserID     string
	CarID      string
	DriverID   string // опционально
	StartDate  time.Time
	EndDate    time.Time
	Location   string
	WithDriver bool
}

// CreateBookingOutput — результат создания бронирования
type CreateBookingOutput struct {
	BookingID  string `json:"booking_id"`
	Status     string `json:"status"`
	TotalPrice int    `json:"total_price"`
	CreatedAt  string `json:"created_at"` // ISO8601
}

// CreateBookingUseCase — интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, input CreateBookingInput) (*CreateBookingOutput, error)
}

// ListUserBookingsOutput — список бронирований пользователя
type ListUserBookingsOutput struct {
	Bookings []*domain.Booking `json:"bookings"`
}

// ListUserBookingsUseCase — интерфейс use case списка бронирований пользователя
type ListUserBookingsUseCase interface {
	Execute(ctx context.Context, userID string) (*ListUserBookingsOutput, error)
}

// CancelBookingInput — входные данные для отмены
type CancelBookingInput struct {
	BookingID string
	UserID    string // инициатор; должен быть владельцем
}

// CancelBookingOutput — результат отмены
type CancelBookingOutput struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// CancelBookingUseCase — интерфейс use case отмены бронирования
type CancelBookingUseCase interface {
	Execute(ctx context.Context, input CancelBookingInput) (*CancelBookingOutput, error)
}
