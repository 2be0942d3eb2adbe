package in

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
)

// DriverInsightsOutput — агрегированные инсайты по водителю.
// SampleData выставляется, когда у водителя еще нет отзывов
// и анализ построен на синтетических примерах.
type DriverInsightsOutput struct {
	DriverID   string                `json:"driverId"`
	DriverName string                `json:"driverName"`
	Insights   domain.DriverInsights `json:"insights"`
	SampleData bool                  `json:"sampleData,omitempty"`
}

// DriverInsightsUseCase — интерфейс use case агрегации инсайтов
type DriverInsightsUseCase interface {
	Execute(ctx context.Context, driverID string) (*DriverInsightsOutput, error)
}
