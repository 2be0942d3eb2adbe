package out

import "context"

// ReviewCreatedEvent — событие нового отзыва (routing key review.created)
type ReviewCreatedEvent struct {
	ReviewID  string `json:"review_id"`
	UserID    string `json:"user_id"`
	CarID     string `json:"car_id,omitempty"`
	DriverID  string `json:"driver_id,omitempty"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// ReviewEventPublisher — публикация событий отзывов в review_topic
type ReviewEventPublisher interface {
	PublishReviewCreated(ctx context.Context, event ReviewCreatedEvent) error
}
