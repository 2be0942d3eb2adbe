package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, user_id, car_id, COALESCE(driver_id, ''), start_date, end_date,
	location, total_price, status, with_driver, created_at, updated_at`

// BookingPgRepository — Postgres реализация BookingRepository
type BookingPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewBookingPgRepository создает новый репозиторий бронирований
func NewBookingPgRepository(pool *pgxpool.Pool, log *logger.Logger) *BookingPgRepository {
	return &BookingPgRepository{pool: pool, log: log}
}

// Create создает новое бронирование
func (r *BookingPgRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, car_id, driver_id, start_date, end_date,
		                      location, total_price, status, with_driver, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CarID,
		booking.DriverID,
		booking.StartDate,
		booking.EndDate,
		booking.Location,
		booking.TotalPrice,
		booking.Status,
		booking.WithDriver,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// FindByID находит бронирование по ID
func (r *BookingPgRepository) FindByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking by id: %w", err)
	}

	return booking, nil
}

// ListByUser возвращает бронирования пользователя, новые первыми
func (r *BookingPgRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, bookingColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query bookings by user: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *BookingPgRepository) UpdateStatus(ctx context.Context, bookingID, status string) error {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, bookingID, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// scanBooking читает бронирование из строки результата
func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CarID,
		&booking.DriverID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Location,
		&booking.TotalPrice,
		&booking.Status,
		&booking.WithDriver,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
