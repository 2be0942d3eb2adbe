package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
)

func seedBooking(repo *fakeBookingRepo, id, userID, status string) *domain.Booking {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:         id,
		UserID:     userID,
		CarID:      "c1",
		StartDate:  start,
		EndDate:    start.Add(48 * time.Hour),
		TotalPrice: 2400,
		Status:     status,
	}
	repo.bookings[id] = booking
	return booking
}

func TestCancelBookingService_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "b1", "u1", domain.StatusPending)
	publisher := &fakePublisher{}
	svc := NewCancelBookingService(repo, publisher, testBookingLogger())

	output, err := svc.Execute(context.Background(), in.CancelBookingInput{BookingID: "b1", UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, output.Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings["b1"].Status)
	assert.Equal(t, []string{domain.EventBookingCancelled}, publisher.events)
}

func TestCancelBookingService_NotOwner(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "b1", "u1", domain.StatusPending)
	svc := NewCancelBookingService(repo, &fakePublisher{}, testBookingLogger())

	_, err := svc.Execute(context.Background(), in.CancelBookingInput{BookingID: "b1", UserID: "intruder"})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Equal(t, domain.StatusPending, repo.bookings["b1"].Status)
}

func TestCancelBookingService_NotCancellableStatuses(t *testing.T) {
	for _, status := range []string{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(status, func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, "b1", "u1", status)
			svc := NewCancelBookingService(repo, &fakePublisher{}, testBookingLogger())

			_, err := svc.Execute(context.Background(), in.CancelBookingInput{BookingID: "b1", UserID: "u1"})

			assert.ErrorIs(t, err, domain.ErrNotCancellable)
		})
	}
}

func TestCancelBookingService_ConfirmedIsCancellable(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "b1", "u1", domain.StatusConfirmed)
	svc := NewCancelBookingService(repo, &fakePublisher{}, testBookingLogger())

	output, err := svc.Execute(context.Background(), in.CancelBookingInput{BookingID: "b1", UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, output.Status)
}

func TestCancelBookingService_UnknownBooking(t *testing.T) {
	svc := NewCancelBookingService(newFakeBookingRepo(), &fakePublisher{}, testBookingLogger())

	_, err := svc.Execute(context.Background(), in.CancelBookingInput{BookingID: "missing", UserID: "u1"})

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestListUserBookingsService(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, "b1", "u1", domain.StatusPending)
	seedBooking(repo, "b2", "u1", domain.StatusCancelled)
	seedBooking(repo, "b3", "other", domain.StatusPending)
	svc := NewListUserBookingsService(repo)

	output, err := svc.Execute(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, output.Bookings, 2)
	for _, b := range output.Bookings {
		assert.Equal(t, "u1", b.UserID)
	}
}
