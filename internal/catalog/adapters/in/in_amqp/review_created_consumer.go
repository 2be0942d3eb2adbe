package inamqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/mq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReviewCreatedMessage — событие нового отзыва из очереди review.created
type ReviewCreatedMessage struct {
	ReviewID string `json:"review_id"`
	CarID    string `json:"car_id,omitempty"`
	DriverID string `json:"driver_id,omitempty"`
	Rating   int    `json:"rating"`
}

// ReviewCreatedConsumer пересчитывает рейтинги при появлении нового отзыва
type ReviewCreatedConsumer struct {
	mqConn   *mq.RabbitMQ
	recalcUC in.RecalcRatingUseCase
	log      *logger.Logger
}

// NewReviewCreatedConsumer создает новый consumer
func NewReviewCreatedConsumer(mqConn *mq.RabbitMQ, recalcUC in.RecalcRatingUseCase, log *logger.Logger) *ReviewCreatedConsumer {
	return &ReviewCreatedConsumer{
		mqConn:   mqConn,
		recalcUC: recalcUC,
		log:      log,
	}
}

// Start запускает consumer очереди review.created
func (c *ReviewCreatedConsumer) Start(ctx context.Context) error {
	return c.mqConn.Consume(ctx, mq.QueueReviewCreated, "catalog_rating_recalc", func(msg amqp.Delivery) {
		if err := c.handleReviewCreated(ctx, msg); err != nil {
			c.log.Error(logger.Entry{
				Action:  "handle_review_created_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
			// Nack без requeue: пересчет по всем отзывам, повтор придет со следующим событием
			_ = msg.Nack(false, false)
			return
		}
		_ = msg.Ack(false)
	})
}

// handleReviewCreated пересчитывает рейтинг машины и/или водителя из события
func (c *ReviewCreatedConsumer) handleReviewCreated(ctx context.Context, msg amqp.Delivery) error {
	var event ReviewCreatedMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("parse review event: %w", err)
	}

	c.log.Info(logger.Entry{
		Action:  "review_created_received",
		Message: fmt.Sprintf("review=%s car=%s driver=%s", event.ReviewID, event.CarID, event.DriverID),
		Additional: map[string]any{
			"routing_key": msg.RoutingKey,
		},
	})

	return c.recalcUC.Execute(ctx, event.CarID, event.DriverID)
}
