package domain

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCarNotFound машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrCarUnavailable машина недоступна для аренды
	ErrCarUnavailable = errors.New("car is not available")

	// ErrDriverNotFound водитель не найден
	ErrDriverNotFound = errors.New("driver not found")

	// ErrInvalidDates некорректный период аренды
	ErrInvalidDates = errors.New("end date must be after start date")

	// ErrNotCancellable бронирование нельзя отменить в текущем статусе
	ErrNotCancellable = errors.New("booking cannot be cancelled in its current status")

	// ErrNotOwner бронирование принадлежит другому пользователю
	ErrNotOwner = errors.New("booking belongs to another user")
)
