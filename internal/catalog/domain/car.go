package domain

import "time"

// Car представляет автомобиль в каталоге
type Car struct {
	ID           string
	Name         string
	Brand        string
	Model        string
	Type         string    // Luxury | Sports | SUV | Convertible | Sedan
	Seats        int
	TopSpeed     int       // km/h
	Price        int       // за сутки, доллары
	Year         int
	Transmission string
	FuelType     string
	Description  string
	Images       []string
	Features     []string
	Available    bool
	Rating       int       // 0-500, среднее по отзывам х100
	ReviewCount  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Допустимые типы кузова
var CarTypes = []string{"Luxury", "Sports", "SUV", "Convertible", "Sedan"}

// IsValidCarType проверяет корректность типа
func IsValidCarType(t string) bool {
	for _, ct := range CarTypes {
		if ct == t {
			return true
		}
	}
	return false
}
