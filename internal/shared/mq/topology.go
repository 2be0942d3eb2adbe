package mq

import (
	"context"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// Имена exchanges и очередей, используемых сервисами
const (
	BookingExchange = "booking_topic"
	ReviewExchange  = "review_topic"

	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
	QueueReviewCreated    = "review.created"
)

// SetupTopology создает все exchanges, queues и bindings
func SetupTopology(ctx context.Context, mq *RabbitMQ, log *logger.Logger) error {
	ch := mq.Channel()
	if ch == nil {
		return fmt.Errorf("rabbitmq channel not available")
	}

	// 1. Exchange: booking_topic (topic)
	if err := ch.ExchangeDeclare(
		BookingExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // args
	); err != nil {
		return fmt.Errorf("declare %s: %w", BookingExchange, err)
	}

	// 2. Exchange: review_topic (topic)
	if err := ch.ExchangeDeclare(
		ReviewExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("declare %s: %w", ReviewExchange, err)
	}

	// 3. Очереди для booking_topic
	bookingQueues := []string{
		QueueBookingCreated,
		QueueBookingCancelled,
	}
	for _, q := range bookingQueues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare queue %s: %w", q, err)
		}
		// Routing key совпадает с именем очереди: booking.created, booking.cancelled
		if err := ch.QueueBind(q, q, BookingExchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s: %w", q, err)
		}
	}

	// 4. Очередь для review_topic (пересчет рейтинга машины/водителя)
	if _, err := ch.QueueDeclare(QueueReviewCreated, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", QueueReviewCreated, err)
	}
	if err := ch.QueueBind(QueueReviewCreated, QueueReviewCreated, ReviewExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", QueueReviewCreated, err)
	}

	log.Info(logger.Entry{
		Action:  "topology_setup_complete",
		Message: "all exchanges and queues created",
	})

	return nil
}
