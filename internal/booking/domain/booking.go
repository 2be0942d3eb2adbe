package domain

import (
	"math"
	"time"
)

// Booking представляет бронирование автомобиля
type Booking struct {
	ID         string
	UserID     string
	CarID      string
	DriverID   string    // пусто, если без водителя
	StartDate  time.Time
	EndDate    time.Time
	Location   string
	TotalPrice int       // доллары за весь период
	Status     string    // PENDING | CONFIRMED | COMPLETED | CANCELLED
	WithDriver bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Статусы бронирования
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Типы событий бронирования
const (
	EventBookingCreated   = "BOOKING_CREATED"
	EventBookingCancelled = "BOOKING_CANCELLED"
)

// RentalDays возвращает длительность аренды в сутках (минимум 1)
func RentalDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// CanCancel проверяет, можно ли отменить бронирование
func (b *Booking) CanCancel() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
