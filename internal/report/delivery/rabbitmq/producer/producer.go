package producer

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"report-srv/internal/report"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

// EnqueueWeekly publishes a persistent weekly generation job.
func (p *implProducer) EnqueueWeekly(ctx context.Context, input report.GenerateWeeklyInput) error {
	if input.UserID == "" {
		return report.ErrUserIDRequired
	}

	body, err := json.Marshal(rabbitDelivery.GenerateJobMessage{
		Type:        rabbitDelivery.JobTypeGenerateWeekly,
		UserID:      input.UserID,
		Year:        input.Year,
		Week:        input.Week,
		RequestedAt: p.clock.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrEnqueueFailed, err)
	}

	if err := p.ch.Publish(ctx, p.topology.Exchange, p.topology.Key(), pkgRabbitMQ.Publishing{
		ContentType:  pkgRabbitMQ.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now(),
		Type:         rabbitDelivery.JobTypeGenerateWeekly,
		Body:         body,
	}); err != nil {
		p.l.Errorf(ctx, "report.delivery.rabbitmq.producer.EnqueueWeekly: Publish failed: %v", err)
		return fmt.Errorf("%w: %v", report.ErrEnqueueFailed, err)
	}

	p.l.Infof(ctx, "report.delivery.rabbitmq.producer.EnqueueWeekly: Queued week %d/%d for user %s",
		input.Week, input.Year, input.UserID)
	return nil
}
