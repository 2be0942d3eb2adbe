package out

import "context"

// CarInfo — данные машины, нужные для расчета бронирования
type CarInfo struct {
	ID        string
	Name      string
	Price     int // за сутки
	Available bool
}

// DriverInfo — данные водителя, нужные для бронирования
type DriverInfo struct {
	ID        string
	Name      string
	Available bool
}

// CatalogReader — чтение каталога из booking usecase.
// Реализуется поверх репозиториев каталога, чтобы booking не зависел
// от его доменных типов.
type CatalogReader interface {
	// GetCar возвращает машину или domain.ErrCarNotFound
	GetCar(ctx context.Context, carID string) (*CarInfo, error)

	// GetDriver возвращает водителя или domain.ErrDriverNotFound
	GetDriver(ctx context.Context, driverID string) (*DriverInfo, error)
}
