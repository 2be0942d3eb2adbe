package domain

import "time"

// Review представляет отзыв пользователя о бронировании.
// Отзыв может относиться к машине, к водителю или к обоим сразу.
type Review struct {
	ID        string
	UserID    string
	CarID     string    // пусто, если отзыв только о водителе
	DriverID  string    // пусто, если отзыв только о машине
	BookingID string
	Rating    int       // 1-5
	Comment   string
	City      string
	State     string
	CreatedAt time.Time
}

// RatingStats — агрегат для пересчета рейтинга машины/водителя
type RatingStats struct {
	Count int
	Sum   int
}

// StoredRating возвращает рейтинг в хранимой шкале 0-500:
// округленное среднее 1-5, умноженное на 100.
func (s RatingStats) StoredRating() int {
	if s.Count == 0 {
		return 0
	}
	mean := float64(s.Sum) / float64(s.Count)
	return int(mean*100 + 0.5)
}
