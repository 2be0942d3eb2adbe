package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// fakeCarRepo — репозиторий машин в памяти
type fakeCarRepo struct {
	cars    map[string]*domain.Car
	ratings map[string]int
	counts  map[string]int
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{
		cars:    map[string]*domain.Car{},
		ratings: map[string]int{},
		counts:  map[string]int{},
	}
}

func (f *fakeCarRepo) List(ctx context.Context, filters out.CarFilters) ([]*domain.Car, int, error) {
	result := make([]*domain.Car, 0, len(f.cars))
	for _, c := range f.cars {
		result = append(result, c)
	}
	return result, len(result), nil
}

func (f *fakeCarRepo) FindByID(ctx context.Context, carID string) (*domain.Car, error) {
	if c, ok := f.cars[carID]; ok {
		return c, nil
	}
	return nil, domain.ErrCarNotFound
}

func (f *fakeCarRepo) UpdateRating(ctx context.Context, carID string, rating, reviewCount int) error {
	f.ratings[carID] = rating
	f.counts[carID] = reviewCount
	return nil
}

func (f *fakeCarRepo) SetAvailability(ctx context.Context, carID string, available bool) error {
	if c, ok := f.cars[carID]; ok {
		c.Available = available
	}
	return nil
}

// fakeDriverRepo — репозиторий водителей в памяти
type fakeDriverRepo struct {
	drivers map[string]*domain.Driver
	ratings map[string]int
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{
		drivers: map[string]*domain.Driver{},
		ratings: map[string]int{},
	}
}

func (f *fakeDriverRepo) List(ctx context.Context, filters out.DriverFilters) ([]*domain.Driver, int, error) {
	result := make([]*domain.Driver, 0, len(f.drivers))
	for _, d := range f.drivers {
		result = append(result, d)
	}
	return result, len(result), nil
}

func (f *fakeDriverRepo) FindByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	if d, ok := f.drivers[driverID]; ok {
		return d, nil
	}
	return nil, domain.ErrDriverNotFound
}

func (f *fakeDriverRepo) UpdateRating(ctx context.Context, driverID string, rating int) error {
	f.ratings[driverID] = rating
	return nil
}

// fakeReviewRepo — репозиторий отзывов в памяти с проверкой дубликатов
type fakeReviewRepo struct {
	reviews   []*domain.Review
	createErr error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.reviews {
		if existing.UserID == review.UserID && existing.BookingID == review.BookingID {
			return domain.ErrDuplicateReview
		}
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) List(ctx context.Context, filters out.ReviewFilters) ([]*domain.Review, int, error) {
	return f.reviews, len(f.reviews), nil
}

func (f *fakeReviewRepo) RatingStatsForCar(ctx context.Context, carID string) (domain.RatingStats, error) {
	return f.statsFor(func(r *domain.Review) bool { return r.CarID == carID }), nil
}

func (f *fakeReviewRepo) RatingStatsForDriver(ctx context.Context, driverID string) (domain.RatingStats, error) {
	return f.statsFor(func(r *domain.Review) bool { return r.DriverID == driverID }), nil
}

func (f *fakeReviewRepo) statsFor(match func(*domain.Review) bool) domain.RatingStats {
	var stats domain.RatingStats
	for _, r := range f.reviews {
		if match(r) {
			stats.Count++
			stats.Sum += r.Rating
		}
	}
	return stats
}

// fakeReviewPublisher записывает опубликованные события отзывов
type fakeReviewPublisher struct {
	events []out.ReviewCreatedEvent
	err    error
}

func (f *fakeReviewPublisher) PublishReviewCreated(ctx context.Context, event out.ReviewCreatedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func testCatalogLogger() *logger.Logger {
	return logger.NewLogger("test")
}

func seededCatalog() (*fakeCarRepo, *fakeDriverRepo) {
	cars := newFakeCarRepo()
	cars.cars["c1"] = &domain.Car{ID: "c1", Name: "Huracan", Available: true}
	drivers := newFakeDriverRepo()
	drivers.drivers["d1"] = &domain.Driver{ID: "d1", Name: "Marcus"}
	return cars, drivers
}

func validReviewInput() in.CreateReviewInput {
	return in.CreateReviewInput{
		UserID:    "u1",
		CarID:     "c1",
		DriverID:  "d1",
		BookingID: "b1",
		Rating:    5,
		Comment:   "Flawless ride, immaculate car.",
		City:      "Miami",
		State:     "FL",
	}
}

func TestCreateReviewService_Success(t *testing.T) {
	cars, drivers := seededCatalog()
	reviews := &fakeReviewRepo{}
	publisher := &fakeReviewPublisher{}
	svc := NewCreateReviewService(reviews, cars, drivers, publisher, testCatalogLogger())

	output, err := svc.Execute(context.Background(), validReviewInput())

	require.NoError(t, err)
	assert.Equal(t, 5, output.Rating)

	require.Len(t, reviews.reviews, 1)
	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, output.ReviewID, event.ReviewID)
	assert.Equal(t, "c1", event.CarID)
	assert.Equal(t, "d1", event.DriverID)
}

func TestCreateReviewService_TrimsComment(t *testing.T) {
	cars, drivers := seededCatalog()
	reviews := &fakeReviewRepo{}
	svc := NewCreateReviewService(reviews, cars, drivers, &fakeReviewPublisher{}, testCatalogLogger())

	input := validReviewInput()
	input.Comment = "  great driver  "

	_, err := svc.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "great driver", reviews.reviews[0].Comment)
}

func TestCreateReviewService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *in.CreateReviewInput)
		wantErr error
	}{
		{
			name:    "рейтинг ниже минимума",
			mutate:  func(input *in.CreateReviewInput) { input.Rating = 0 },
			wantErr: domain.ErrInvalidRating,
		},
		{
			name:    "рейтинг выше максимума",
			mutate:  func(input *in.CreateReviewInput) { input.Rating = 6 },
			wantErr: domain.ErrInvalidRating,
		},
		{
			name:    "пустой комментарий",
			mutate:  func(input *in.CreateReviewInput) { input.Comment = "   " },
			wantErr: domain.ErrEmptyComment,
		},
		{
			name: "нет ни машины, ни водителя",
			mutate: func(input *in.CreateReviewInput) {
				input.CarID = ""
				input.DriverID = ""
			},
			wantErr: domain.ErrReviewTargetMissing,
		},
		{
			name:    "несуществующая машина",
			mutate:  func(input *in.CreateReviewInput) { input.CarID = "missing" },
			wantErr: domain.ErrCarNotFound,
		},
		{
			name:    "несуществующий водитель",
			mutate:  func(input *in.CreateReviewInput) { input.DriverID = "missing" },
			wantErr: domain.ErrDriverNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cars, drivers := seededCatalog()
			svc := NewCreateReviewService(&fakeReviewRepo{}, cars, drivers, &fakeReviewPublisher{}, testCatalogLogger())

			input := validReviewInput()
			tt.mutate(&input)

			_, err := svc.Execute(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateReviewService_DuplicateReview(t *testing.T) {
	cars, drivers := seededCatalog()
	reviews := &fakeReviewRepo{}
	svc := NewCreateReviewService(reviews, cars, drivers, &fakeReviewPublisher{}, testCatalogLogger())

	_, err := svc.Execute(context.Background(), validReviewInput())
	require.NoError(t, err)

	_, err = svc.Execute(context.Background(), validReviewInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateReview)
}

func TestCreateReviewService_PublishFailureDoesNotFailReview(t *testing.T) {
	cars, drivers := seededCatalog()
	reviews := &fakeReviewRepo{}
	publisher := &fakeReviewPublisher{err: assert.AnError}
	svc := NewCreateReviewService(reviews, cars, drivers, publisher, testCatalogLogger())

	_, err := svc.Execute(context.Background(), validReviewInput())

	// Отзыв уже сохранен, отказ брокера не откатывает его
	require.NoError(t, err)
	assert.Len(t, reviews.reviews, 1)
}

func TestRecalcRatingService_UpdatesCarAndDriver(t *testing.T) {
	cars, drivers := seededCatalog()
	now := time.Now().UTC()
	reviews := &fakeReviewRepo{reviews: []*domain.Review{
		{ID: "r1", UserID: "u1", CarID: "c1", DriverID: "d1", BookingID: "b1", Rating: 5, CreatedAt: now},
		{ID: "r2", UserID: "u2", CarID: "c1", BookingID: "b2", Rating: 4, CreatedAt: now},
	}}
	svc := NewRecalcRatingService(reviews, cars, drivers, testCatalogLogger())

	err := svc.Execute(context.Background(), "c1", "d1")

	require.NoError(t, err)
	// Машина: среднее 4.5 -> 450 в шкале 0-500
	assert.Equal(t, 450, cars.ratings["c1"])
	assert.Equal(t, 2, cars.counts["c1"])
	// Водитель: единственный отзыв на 5 -> 500
	assert.Equal(t, 500, drivers.ratings["d1"])
}

func TestRecalcRatingService_NoReviewsResetsToZero(t *testing.T) {
	cars, drivers := seededCatalog()
	svc := NewRecalcRatingService(&fakeReviewRepo{}, cars, drivers, testCatalogLogger())

	err := svc.Execute(context.Background(), "c1", "")

	require.NoError(t, err)
	assert.Equal(t, 0, cars.ratings["c1"])
	assert.Equal(t, 0, cars.counts["c1"])
}

func TestRatingStatsStoredRating(t *testing.T) {
	assert.Equal(t, 0, domain.RatingStats{}.StoredRating())
	assert.Equal(t, 500, domain.RatingStats{Count: 1, Sum: 5}.StoredRating())
	assert.Equal(t, 450, domain.RatingStats{Count: 2, Sum: 9}.StoredRating())
	// 10/3 = 3.333… -> 333
	assert.Equal(t, 333, domain.RatingStats{Count: 3, Sum: 10}.StoredRating())
}
