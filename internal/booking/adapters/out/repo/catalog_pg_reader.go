package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogPgReader — Postgres реализация CatalogReader.
// Читает только поля, нужные для расчета бронирования.
type CatalogPgReader struct {
	pool *pgxpool.Pool
}

// NewCatalogPgReader создает новый reader каталога
func NewCatalogPgReader(pool *pgxpool.Pool) *CatalogPgReader {
	return &CatalogPgReader{pool: pool}
}

// GetCar возвращает машину для бронирования
func (r *CatalogPgReader) GetCar(ctx context.Context, carID string) (*out.CarInfo, error) {
	query := `SELECT id, name, price, available FROM cars WHERE id = $1`

	var car out.CarInfo
	err := r.pool.QueryRow(ctx, query, carID).Scan(&car.ID, &car.Name, &car.Price, &car.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("query car: %w", err)
	}

	return &car, nil
}

// GetDriver возвращает водителя для бронирования
func (r *CatalogPgReader) GetDriver(ctx context.Context, driverID string) (*out.DriverInfo, error) {
	query := `SELECT id, name, available FROM drivers WHERE id = $1`

	var driver out.DriverInfo
	err := r.pool.QueryRow(ctx, query, driverID).Scan(&driver.ID, &driver.Name, &driver.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("query driver: %w", err)
	}

	return &driver, nil
}
