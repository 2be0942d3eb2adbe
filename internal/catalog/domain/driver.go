package domain

import "time"

// Driver представляет профессионального водителя
type Driver struct {
	ID          string
	Name        string
	Experience  int       // лет
	Image       string
	Rating      int       // 0-500, среднее по отзывам х100
	TripCount   int
	Description string
	Quote       string
	Specialties []string
	Languages   []string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
