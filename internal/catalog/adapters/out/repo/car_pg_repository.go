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

const carColumns = `id, name, brand, model, type, seats, top_speed, price, year,
	transmission, fuel_type, description, images, features, available,
	rating, review_count, created_at, updated_at`

// CarPgRepository — Postgres реализация CarRepository
type CarPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewCarPgRepository создает новый репозиторий машин
func NewCarPgRepository(pool *pgxpool.Pool, log *logger.Logger) *CarPgRepository {
	return &CarPgRepository{pool: pool, log: log}
}

// List возвращает машины с фильтрами и общее количество
func (r *CarPgRepository) List(ctx context.Context, filters out.CarFilters) ([]*domain.Car, int, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filters.Type != "" {
		whereClause += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filters.Type)
		argIndex++
	}

	if filters.Search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d)", argIndex, argIndex, argIndex)
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM cars WHERE 1=1 %s`, whereClause)

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count cars: %w", err)
	}

	args = append(args, filters.Limit, filters.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM cars
		WHERE 1=1 %s
		ORDER BY rating DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, carColumns, whereClause, argIndex, argIndex+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan car row: %w", err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate cars: %w", err)
	}

	return cars, totalCount, nil
}

// FindByID находит машину по ID
func (r *CarPgRepository) FindByID(ctx context.Context, carID string) (*domain.Car, error) {
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE id = $1`, carColumns)

	row := r.pool.QueryRow(ctx, query, carID)
	car, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("query car by id: %w", err)
	}

	return car, nil
}

// UpdateRating обновляет rating и review_count машины
func (r *CarPgRepository) UpdateRating(ctx context.Context, carID string, rating, reviewCount int) error {
	query := `
		UPDATE cars
		SET rating = $2, review_count = $3, updated_at = now()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, carID, rating, reviewCount)
	if err != nil {
		return fmt.Errorf("update car rating: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

// SetAvailability меняет доступность машины
func (r *CarPgRepository) SetAvailability(ctx context.Context, carID string, available bool) error {
	query := `UPDATE cars SET available = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, carID, available)
	if err != nil {
		return fmt.Errorf("set car availability: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

// scanCar читает машину из строки результата
func scanCar(row pgx.Row) (*domain.Car, error) {
	var car domain.Car
	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Brand,
		&car.Model,
		&car.Type,
		&car.Seats,
		&car.TopSpeed,
		&car.Price,
		&car.Year,
		&car.Transmission,
		&car.FuelType,
		&car.Description,
		&car.Images,
		&car.Features,
		&car.Available,
		&car.Rating,
		&car.ReviewCount,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &car, nil
}
