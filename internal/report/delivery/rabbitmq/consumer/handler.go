package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"report-srv/internal/model"
	"report-srv/internal/report"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
)

type outcome int

const (
	outcomeAck outcome = iota
	outcomeDrop
	outcomeRequeue
)

// handle runs one job. Malformed jobs and jobs that can never succeed are
// dropped. Other failures are retried once.
func (c *consumer) handle(ctx context.Context, body []byte, redelivered bool) outcome {
	var msg rabbitDelivery.GenerateJobMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handle: Invalid message format (dropping): %v", err)
		return outcomeDrop
	}
	if msg.Type != rabbitDelivery.JobTypeGenerateWeekly || msg.UserID == "" {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handle: Unsupported job %q for user %q (dropping)", msg.Type, msg.UserID)
		return outcomeDrop
	}

	out, err := c.uc.GenerateWeekly(ctx, model.SystemScope(), toGenerateWeeklyInput(msg))
	switch {
	case err == nil:
		c.l.Infof(ctx, "report.delivery.rabbitmq.consumer.handle: Generated report %s for user %s", out.Report.ID, msg.UserID)
		return outcomeAck
	case errors.Is(err, report.ErrDuplicateProcessing):
		c.l.Infof(ctx, "report.delivery.rabbitmq.consumer.handle: Week %d/%d for user %s already in progress", msg.Week, msg.Year, msg.UserID)
		return outcomeAck
	case isPermanent(err):
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handle: Job for user %s cannot succeed (dropping): %v", msg.UserID, err)
		return outcomeDrop
	case redelivered:
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handle: Retry failed for user %s (dropping): %v", msg.UserID, err)
		return outcomeDrop
	default:
		c.l.Errorf(ctx, "report.delivery.rabbitmq.consumer.handle: GenerateWeekly failed for user %s, requeueing: %v", msg.UserID, err)
		return outcomeRequeue
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, report.ErrUserNotFound) ||
		errors.Is(err, report.ErrUserIDRequired) ||
		errors.Is(err, report.ErrInvalidWeek) ||
		errors.Is(err, report.ErrInvalidRange)
}

func toGenerateWeeklyInput(m rabbitDelivery.GenerateJobMessage) report.GenerateWeeklyInput {
	return report.GenerateWeeklyInput{
		UserID: m.UserID,
		Year:   m.Year,
		Week:   m.Week,
	}
}
