package out

import "context"

// BookingEventData — полезная нагрузка события бронирования
type BookingEventData struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	CarID      string `json:"car_id"`
	DriverID   string `json:"driver_id,omitempty"`
	Status     string `json:"status"`
	TotalPrice int    `json:"total_price"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Timestamp  string `json:"timestamp"`
}

// BookingEventPublisher — публикация событий бронирования в booking_topic
type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, data BookingEventData) error
}
