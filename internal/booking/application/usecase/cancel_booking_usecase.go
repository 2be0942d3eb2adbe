package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// CancelBookingService реализует CancelBookingUseCase
type CancelBookingService struct {
	bookingRepo out.BookingRepository
	publisher   out.BookingEventPublisher
	log         *logger.Logger
}

// NewCancelBookingService создает сервис отмены бронирования
func NewCancelBookingService(
	bookingRepo out.BookingRepository,
	publisher out.BookingEventPublisher,
	log *logger.Logger,
) *CancelBookingService {
	return &CancelBookingService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		log:         log,
	}
}

// Execute отменяет бронирование владельца в статусе PENDING или CONFIRMED
func (s *CancelBookingService) Execute(ctx context.Context, input in.CancelBookingInput) (*in.CancelBookingOutput, error) {
	booking, err := s.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != input.UserID {
		return nil, domain.ErrNotOwner
	}

	if !booking.CanCancel() {
		return nil, domain.ErrNotCancellable
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	now := time.Now().UTC()
	event := out.BookingEventData{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		CarID:      booking.CarID,
		DriverID:   booking.DriverID,
		Status:     domain.StatusCancelled,
		TotalPrice: booking.TotalPrice,
		StartDate:  booking.StartDate.Format(time.RFC3339),
		EndDate:    booking.EndDate.Format(time.RFC3339),
		Timestamp:  now.Format(time.RFC3339),
	}
	if err := s.publisher.PublishBookingEvent(ctx, domain.EventBookingCancelled, event); err != nil {
		s.log.Error(logger.Entry{
			Action:    "publish_booking_cancelled_failed",
			Message:   err.Error(),
			BookingID: booking.ID,
			Error:     &logger.ErrObj{Msg: err.Error()},
		})
	}

	s.log.Info(logger.Entry{
		Action:    "booking_cancelled",
		Message:   fmt.Sprintf("booking %s cancelled", booking.ID),
		BookingID: booking.ID,
	})

	return &in.CancelBookingOutput{
		BookingID: booking.ID,
		Status:    domain.StatusCancelled,
	}, nil
}
