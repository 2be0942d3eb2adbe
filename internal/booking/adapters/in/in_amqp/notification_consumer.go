package inamqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/mq"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/ws"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingEventMessage — событие бронирования из booking_topic
type BookingEventMessage struct {
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

// NotificationConsumer пересылает события бронирований пользователю через WebSocket
type NotificationConsumer struct {
	mqConn *mq.RabbitMQ
	hub    *ws.Hub
	log    *logger.Logger
}

// NewNotificationConsumer создает новый consumer
func NewNotificationConsumer(mqConn *mq.RabbitMQ, hub *ws.Hub, log *logger.Logger) *NotificationConsumer {
	return &NotificationConsumer{
		mqConn: mqConn,
		hub:    hub,
		log:    log,
	}
}

// Start запускает consumers для booking.created и booking.cancelled
func (c *NotificationConsumer) Start(ctx context.Context) error {
	queues := map[string]string{
		mq.QueueBookingCreated:   "booking_confirmed",
		mq.QueueBookingCancelled: "booking_cancelled",
	}

	for queue, msgType := range queues {
		queue, msgType := queue, msgType
		err := c.mqConn.Consume(ctx, queue, "booking_notifications_"+queue, func(msg amqp.Delivery) {
			if err := c.handleBookingEvent(msg, msgType); err != nil {
				c.log.Error(logger.Entry{
					Action:  "handle_booking_event_failed",
					Message: err.Error(),
					Error:   &logger.ErrObj{Msg: err.Error()},
					Additional: map[string]any{
						"queue": queue,
					},
				})
				_ = msg.Nack(false, false)
				return
			}
			_ = msg.Ack(false)
		})
		if err != nil {
			return fmt.Errorf("consume %s: %w", queue, err)
		}
	}

	return nil
}

// handleBookingEvent отправляет уведомление владельцу бронирования
func (c *NotificationConsumer) handleBookingEvent(msg amqp.Delivery, msgType string) error {
	var event BookingEventMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("parse booking event: %w", err)
	}

	c.log.Info(logger.Entry{
		Action:    "booking_event_received",
		Message:   fmt.Sprintf("booking=%s status=%s", event.BookingID, event.Status),
		BookingID: event.BookingID,
		Additional: map[string]any{
			"routing_key": msg.RoutingKey,
			"user_id":     event.UserID,
		},
	})

	// Пользователь может быть оффлайн — это не ошибка обработки
	if !c.hub.IsUserConnected(event.UserID) {
		return nil
	}

	return c.hub.SendTypedMessage(event.UserID, msgType, event)
}
