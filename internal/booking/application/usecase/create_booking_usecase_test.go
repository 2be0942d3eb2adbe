package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// fakeBookingRepo — репозиторий бронирований в памяти
type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*domain.Booking{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok {
		return b, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

// fakeCatalog — каталог в памяти для бронирований
type fakeCatalog struct {
	cars    map[string]*out.CarInfo
	drivers map[string]*out.DriverInfo
}

func (f *fakeCatalog) GetCar(ctx context.Context, carID string) (*out.CarInfo, error) {
	if c, ok := f.cars[carID]; ok {
		return c, nil
	}
	return nil, domain.ErrCarNotFound
}

func (f *fakeCatalog) GetDriver(ctx context.Context, driverID string) (*out.DriverInfo, error) {
	if d, ok := f.drivers[driverID]; ok {
		return d, nil
	}
	return nil, domain.ErrDriverNotFound
}

// fakePublisher записывает опубликованные события
type fakePublisher struct {
	events []string
	err    error
}

func (f *fakePublisher) PublishBookingEvent(ctx context.Context, eventType string, data out.BookingEventData) error {
	f.events = append(f.events, eventType)
	return f.err
}

func testBookingLogger() *logger.Logger {
	return logger.NewLogger("test")
}

func catalogWithCar(price int, available bool) *fakeCatalog {
	return &fakeCatalog{
		cars: map[string]*out.CarInfo{
			"c1": {ID: "c1", Name: "Aventador", Price: price, Available: available},
		},
		drivers: map[string]*out.DriverInfo{
			"d1": {ID: "d1", Name: "Marcus", Available: true},
		},
	}
}

func validBookingInput() in.CreateBookingInput {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return in.CreateBookingInput{
		UserID:    "u1",
		CarID:     "c1",
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		Location:  "Miami, FL",
	}
}

func TestCreateBookingService_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	publisher := &fakePublisher{}
	svc := NewCreateBookingService(repo, catalogWithCar(1200, true), publisher, testBookingLogger())

	output, err := svc.Execute(context.Background(), validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, output.Status)
	// 3 суток по 1200
	assert.Equal(t, 3600, output.TotalPrice)
	assert.Equal(t, []string{domain.EventBookingCreated}, publisher.events)

	stored := repo.bookings[output.BookingID]
	require.NotNil(t, stored)
	assert.Equal(t, "u1", stored.UserID)
}

func TestCreateBookingService_PartialDayRoundsUp(t *testing.T) {
	svc := NewCreateBookingService(newFakeBookingRepo(), catalogWithCar(1000, true), &fakePublisher{}, testBookingLogger())

	input := validBookingInput()
	input.EndDate = input.StartDate.Add(30 * time.Hour) // 1.25 суток -> 2

	output, err := svc.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 2000, output.TotalPrice)
}

func TestCreateBookingService_InvalidDates(t *testing.T) {
	svc := NewCreateBookingService(newFakeBookingRepo(), catalogWithCar(1000, true), &fakePublisher{}, testBookingLogger())

	input := validBookingInput()
	input.EndDate = input.StartDate

	_, err := svc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidDates)
}

func TestCreateBookingService_CarUnavailable(t *testing.T) {
	svc := NewCreateBookingService(newFakeBookingRepo(), catalogWithCar(1000, false), &fakePublisher{}, testBookingLogger())

	_, err := svc.Execute(context.Background(), validBookingInput())

	assert.ErrorIs(t, err, domain.ErrCarUnavailable)
}

func TestCreateBookingService_UnknownCar(t *testing.T) {
	svc := NewCreateBookingService(newFakeBookingRepo(), &fakeCatalog{cars: map[string]*out.CarInfo{}}, &fakePublisher{}, testBookingLogger())

	_, err := svc.Execute(context.Background(), validBookingInput())

	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestCreateBookingService_UnknownDriver(t *testing.T) {
	svc := NewCreateBookingService(newFakeBookingRepo(), catalogWithCar(1000, true), &fakePublisher{}, testBookingLogger())

	input := validBookingInput()
	input.WithDriver = true
	input.DriverID = "missing"

	_, err := svc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}

func TestCreateBookingService_PublishFailureDoesNotFailBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	publisher := &fakePublisher{err: assert.AnError}
	svc := NewCreateBookingService(repo, catalogWithCar(1000, true), publisher, testBookingLogger())

	output, err := svc.Execute(context.Background(), validBookingInput())

	// Бронирование уже сохранено, отказ брокера не откатывает его
	require.NoError(t, err)
	require.NotNil(t, repo.bookings[output.BookingID])
}
