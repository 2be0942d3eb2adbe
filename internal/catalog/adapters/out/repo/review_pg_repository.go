package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewPgRepository — Postgres реализация ReviewRepository
type ReviewPgRepository struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewReviewPgRepository создает новый репозиторий отзывов
func NewReviewPgRepository(pool *pgxpool.Pool, log *logger.Logger) *ReviewPgRepository {
	return &ReviewPgRepository{pool: pool, log: log}
}

// Create сохраняет новый отзыв
func (r *ReviewPgRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, car_id, driver_id, booking_id, rating, comment, city, state, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.CarID,
		review.DriverID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.City,
		review.State,
		review.CreatedAt,
	)
	if err != nil {
		// unique_violation на (user_id, booking_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// List возвращает отзывы с фильтрами и общее количество
func (r *ReviewPgRepository) List(ctx context.Context, filters out.ReviewFilters) ([]*domain.Review, int, error) {
	whereClause := ""
	args := []interface{}{}
	argIndex := 1

	if filters.CarID != "" {
		whereClause += fmt.Sprintf(" AND car_id = $%d", argIndex)
		args = append(args, filters.CarID)
		argIndex++
	}

	if filters.DriverID != "" {
		whereClause += fmt.Sprintf(" AND driver_id = $%d", argIndex)
		args = append(args, filters.DriverID)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reviews WHERE 1=1 %s`, whereClause)

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	args = append(args, filters.Limit, filters.Offset)
	query := fmt.Sprintf(`
		SELECT id, user_id, COALESCE(car_id, ''), COALESCE(driver_id, ''), booking_id,
		       rating, comment, COALESCE(city, ''), COALESCE(state, ''), created_at
		FROM reviews
		WHERE 1=1 %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.CarID,
			&review.DriverID,
			&review.BookingID,
			&review.Rating,
			&review.Comment,
			&review.City,
			&review.State,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, totalCount, nil
}

// RatingStatsForCar возвращает count/sum рейтингов по машине
func (r *ReviewPgRepository) RatingStatsForCar(ctx context.Context, carID string) (domain.RatingStats, error) {
	return r.ratingStats(ctx, "car_id", carID)
}

// RatingStatsForDriver возвращает count/sum рейтингов по водителю
func (r *ReviewPgRepository) RatingStatsForDriver(ctx context.Context, driverID string) (domain.RatingStats, error) {
	return r.ratingStats(ctx, "driver_id", driverID)
}

func (r *ReviewPgRepository) ratingStats(ctx context.Context, column, id string) (domain.RatingStats, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*), COALESCE(SUM(rating), 0)
		FROM reviews
		WHERE %s = $1
	`, column)

	var stats domain.RatingStats
	if err := r.pool.QueryRow(ctx, query, id).Scan(&stats.Count, &stats.Sum); err != nil {
		return domain.RatingStats{}, fmt.Errorf("rating stats: %w", err)
	}

	return stats, nil
}
