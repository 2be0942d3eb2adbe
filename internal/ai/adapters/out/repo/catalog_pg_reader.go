package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogPgReader — Postgres реализация CatalogReader для AI-сервиса.
// Читает только поля, нужные анализатору, рекомендациям и ассистенту.
type CatalogPgReader struct {
	pool *pgxpool.Pool
}

// NewCatalogPgReader создает новый reader каталога
func NewCatalogPgReader(pool *pgxpool.Pool) *CatalogPgReader {
	return &CatalogPgReader{pool: pool}
}

// GetDriver возвращает водителя для анализа
func (r *CatalogPgReader) GetDriver(ctx context.Context, driverID string) (*domain.DriverRef, error) {
	query := `SELECT id, name, experience FROM drivers WHERE id = $1`

	var driver domain.DriverRef
	err := r.pool.QueryRow(ctx, query, driverID).Scan(&driver.ID, &driver.Name, &driver.Experience)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("query driver: %w", err)
	}

	return &driver, nil
}

// ListDriverReviews возвращает отзывы водителя, новые первыми
func (r *CatalogPgReader) ListDriverReviews(ctx context.Context, driverID string) ([]domain.ReviewInput, error) {
	query := `SELECT id, user_id, COALESCE(driver_id, ''), COALESCE(car_id, ''), booking_id,
	                 rating, comment, COALESCE(city, ''), COALESCE(state, '')
	          FROM reviews
	          WHERE driver_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.ReviewInput, 0)
	for rows.Next() {
		var rv domain.ReviewInput
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.DriverID, &rv.CarID, &rv.BookingID,
			&rv.Rating, &rv.Comment, &rv.City, &rv.State); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// ListDriverProfiles возвращает доступных водителей для рекомендаций
func (r *CatalogPgReader) ListDriverProfiles(ctx context.Context) ([]domain.DriverProfile, error) {
	query := `SELECT id, name, experience, specialties, languages, rating
	          FROM drivers
	          WHERE available = TRUE
	          ORDER BY rating DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.DriverProfile, 0)
	for rows.Next() {
		var d domain.DriverProfile
		if err := rows.Scan(&d.ID, &d.Name, &d.Experience, &d.Specialties, &d.Languages, &d.Rating); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drivers: %w", err)
	}

	return drivers, nil
}

// ListCarSummaries возвращает доступные машины для контекста ассистента
func (r *CatalogPgReader) ListCarSummaries(ctx context.Context) ([]domain.CarSummary, error) {
	query := `SELECT id, name, brand, type, price FROM cars WHERE available = TRUE ORDER BY price DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	cars := make([]domain.CarSummary, 0)
	for rows.Next() {
		var c domain.CarSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Brand, &c.Type, &c.Price); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cars: %w", err)
	}

	return cars, nil
}

// ListDriverSummaries возвращает доступных водителей для контекста ассистента
func (r *CatalogPgReader) ListDriverSummaries(ctx context.Context) ([]domain.DriverSummary, error) {
	query := `SELECT id, name, experience, specialties FROM drivers WHERE available = TRUE ORDER BY experience DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.DriverSummary, 0)
	for rows.Next() {
		var d domain.DriverSummary
		if err := rows.Scan(&d.ID, &d.Name, &d.Experience, &d.Specialties); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drivers: %w", err)
	}

	return drivers, nil
}
