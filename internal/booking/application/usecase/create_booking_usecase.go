package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/utils"
)

// CreateBookingService реализует CreateBookingUseCase
type CreateBookingService struct {
	bookingRepo out.BookingRepository
	catalog     out.CatalogReader
	publisher   out.BookingEventPublisher
	log         *logger.Logger
}

// NewCreateBookingService создает сервис бронирования
func NewCreateBookingService(
	bookingRepo out.BookingRepository,
	catalog out.CatalogReader,
	publisher out.BookingEventPublisher,
	log *logger.Logger,
) *CreateBookingService {
	return &CreateBookingService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		publisher:   publisher,
		log:         log,
	}
}

// Execute создает бронирование: машина должна существовать и быть доступной,
// водитель (если запрошен) — существовать. Цена = цена машины за сутки х дни.
func (s *CreateBookingService) Execute(ctx context.Context, input in.CreateBookingInput) (*in.CreateBookingOutput, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, domain.ErrInvalidDates
	}

	car, err := s.catalog.GetCar(ctx, input.CarID)
	if err != nil {
		return nil, err
	}
	if !car.Available {
		return nil, domain.ErrCarUnavailable
	}

	if input.WithDriver && input.DriverID != "" {
		if _, err := s.catalog.GetDriver(ctx, input.DriverID); err != nil {
			return nil, err
		}
	}

	days := domain.RentalDays(input.StartDate, input.EndDate)
	totalPrice := car.Price * days

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         utils.NewUUID(),
		UserID:     input.UserID,
		CarID:      input.CarID,
		DriverID:   input.DriverID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Location:   input.Location,
		TotalPrice: totalPrice,
		Status:     domain.StatusPending,
		WithDriver: input.WithDriver,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.log.Error(logger.Entry{
			Action:    "create_booking_failed",
			Message:   err.Error(),
			BookingID: booking.ID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Публикуем BOOKING_CREATED; бронирование уже сохранено, ошибку только логируем
	event := out.BookingEventData{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		CarID:      booking.CarID,
		DriverID:   booking.DriverID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		StartDate:  booking.StartDate.Format(time.RFC3339),
		EndDate:    booking.EndDate.Format(time.RFC3339),
		Timestamp:  now.Format(time.RFC3339),
	}
	if err := s.publisher.PublishBookingEvent(ctx, domain.EventBookingCreated, event); err != nil {
		s.log.Error(logger.Entry{
			Action:    "publish_booking_created_failed",
			Message:   err.Error(),
			BookingID: booking.ID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
	}

	s.log.Info(logger.Entry{
		Action:    "booking_created",
		Message:   fmt.Sprintf("booking %s created for car %s", booking.ID, car.Name),
		BookingID: booking.ID,
		Additional: map[string]interface{}{
			"user_id":     booking.UserID,
			"car_id":      booking.CarID,
			"total_price": booking.TotalPrice,
			"days":        days,
		},
	})

	return &in.CreateBookingOutput{
		BookingID:  booking.ID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt.Format(time.RFC3339),
	}, nil
}
