package out_amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/booking/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/mq"
)

// BookingEventPublisher публикует события бронирований в RabbitMQ
type BookingEventPublisher struct {
	mq  *mq.RabbitMQ
	log *logger.Logger
}

// NewBookingEventPublisher создает новый publisher
func NewBookingEventPublisher(mqConn *mq.RabbitMQ, log *logger.Logger) *BookingEventPublisher {
	return &BookingEventPublisher{
		mq:  mqConn,
		log: log,
	}
}

// PublishBookingEvent публикует событие бронирования в booking_topic
func (p *BookingEventPublisher) PublishBookingEvent(ctx context.Context, eventType string, data out.BookingEventData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	routingKey := getRoutingKey(eventType)

	if err := p.mq.Publish(ctx, mq.BookingExchange, routingKey, payload); err != nil {
		p.log.Error(logger.Entry{
			Action:    "publish_booking_event_failed",
			Message:   err.Error(),
			BookingID: data.BookingID,
			Error:     &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]any{
				"event_type":  eventType,
				"routing_key": routingKey,
			},
		})
		return fmt.Errorf("publish to rabbitmq: %w", err)
	}

	p.log.Debug(logger.Entry{
		Action:    "booking_event_published",
		Message:   eventType,
		BookingID: data.BookingID,
		Additional: map[string]any{
			"routing_key": routingKey,
		},
	})

	return nil
}

// getRoutingKey возвращает routing key для события
func getRoutingKey(eventType string) string {
	switch eventType {
	case domain.EventBookingCreated:
		return mq.QueueBookingCreated
	case domain.EventBookingCancelled:
		return mq.QueueBookingCancelled
	default:
		return "booking.event"
	}
}
