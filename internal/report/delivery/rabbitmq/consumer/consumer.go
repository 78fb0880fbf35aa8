package consumer

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "report-srv"

// ConsumeGenerateJobs declares the topology and handles jobs in the
// background until ctx is done.
func (c *consumer) ConsumeGenerateJobs(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	c.ch = ch

	if err := c.topology.Declare(ch); err != nil {
		return err
	}
	if err := ch.Qos(c.prefetch); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := ch.Consume(c.topology.Queue, consumerTag)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.topology.Queue, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.ConsumeGenerateJobs: Delivery channel closed")
					return
				}
				c.settle(ctx, d)
			}
		}
	}()

	c.l.Infof(ctx, "report.delivery.rabbitmq.consumer.ConsumeGenerateJobs: Consuming %s", c.topology.Queue)
	return nil
}

func (c *consumer) settle(ctx context.Context, d amqp.Delivery) {
	var err error
	switch c.handle(ctx, d.Body, d.Redelivered) {
	case outcomeAck:
		err = d.Ack(false)
	case outcomeRequeue:
		err = d.Nack(false, true)
	default:
		err = d.Nack(false, false)
	}
	if err != nil {
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.settle: Failed to settle delivery %d: %v", d.DeliveryTag, err)
	}
}
