package out_amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/catalog/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/mq"
)

// ReviewEventPublisher публикует события отзывов в RabbitMQ
type ReviewEventPublisher struct {
	mq  *mq.RabbitMQ
	log *logger.Logger
}

// NewReviewEventPublisher создает новый publisher
func NewReviewEventPublisher(mqConn *mq.RabbitMQ, log *logger.Logger) *ReviewEventPublisher {
	return &ReviewEventPublisher{
		mq:  mqConn,
		log: log,
	}
}

// PublishReviewCreated публикует событие нового отзыва в review_topic
func (p *ReviewEventPublisher) PublishReviewCreated(ctx context.Context, event out.ReviewCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	if err := p.mq.Publish(ctx, mq.ReviewExchange, mq.QueueReviewCreated, payload); err != nil {
		p.log.Error(logger.Entry{
			Action:  "publish_review_event_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
			Additional: map[string]any{
				"review_id":   event.ReviewID,
				"routing_key": mq.QueueReviewCreated,
			},
		})
		return fmt.Errorf("publish to rabbitmq: %w", err)
	}

	p.log.Debug(logger.Entry{
		Action:  "review_event_published",
		Message: event.ReviewID,
		Additional: map[string]any{
			"routing_key": mq.QueueReviewCreated,
		},
	})

	return nil
}
