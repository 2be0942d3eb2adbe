package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const driverColumns = `id, name, experience, image, rating, trip_count,
	description, quote, specialties, languages, available, created_at, updated_at`

// DriverPgRepository — Postgres реализация DriverRepository
type DriverPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewDriverPgRepository создает новый репозиторий водителей
func NewDriverPgRepository(pool *pgxpool.Pool, log *logger.Logger) *DriverPgRepository {
	return &DriverPgRepository{pool: pool, log: log}
}

// List возвращает водителей с фильтрами и общее количество
func (r *DriverPgRepository) List(ctx context.Context, filters out.DriverFilters) ([]*domain.Driver, int, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filters.AvailableOnly {
		whereClause += " AND available = TRUE"
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM drivers WHERE 1=1 %s`, whereClause)

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count drivers: %w", err)
	}

	args = append(args, filters.Limit, filters.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM drivers
		WHERE 1=1 %s
		ORDER BY rating DESC, trip_count DESC
		LIMIT $%d OFFSET $%d
	`, driverColumns, whereClause, argIndex, argIndex+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan driver row: %w", err)
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate drivers: %w", err)
	}

	return drivers, totalCount, nil
}

// FindByID находит водителя по ID
func (r *DriverPgRepository) FindByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	query := fmt.Sprintf(`SELECT %s FROM drivers WHERE id = $1`, driverColumns)

	row := r.pool.QueryRow(ctx, query, driverID)
	driver, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("query driver by id: %w", err)
	}

	return driver, nil
}

// UpdateRating обновляет rating водителя
func (r *DriverPgRepository) UpdateRating(ctx context.Context, driverID string, rating int) error {
	query := `UPDATE drivers SET rating = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, driverID, rating)
	if err != nil {
		return fmt.Errorf("update driver rating: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDriverNotFound
	}

	return nil
}

// scanDriver читает водителя из строки результата
func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var driver domain.Driver
	err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.Experience,
		&driver.Image,
		&driver.Rating,
		&driver.TripCount,
		&driver.Description,
		&driver.Quote,
		&driver.Specialties,
		&driver.Languages,
		&driver.Available,
		&driver.CreatedAt,
		&driver.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driver, nil
}
