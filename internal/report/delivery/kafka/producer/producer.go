package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
	pkgKafka "report-srv/pkg/kafka"
)

// PublishGenerated publishes a report.generated event.
func (p *implProducer) PublishGenerated(ctx context.Context, rpt model.Report) error {
	return p.publish(ctx, p.toMessage(kafkaDelivery.EventReportGenerated, rpt))
}

// PublishSent publishes a report.sent event with the delivery counts.
func (p *implProducer) PublishSent(ctx context.Context, rpt model.Report, out report.SendOutput) error {
	msg := p.toMessage(kafkaDelivery.EventReportSent, rpt)
	msg.SentCount = out.SentCount
	msg.RecipientCount = out.Total
	msg.Partial = out.Partial
	return p.publish(ctx, msg)
}

// PublishFailed publishes a report.failed event.
func (p *implProducer) PublishFailed(ctx context.Context, rpt model.Report, reason string) error {
	msg := p.toMessage(kafkaDelivery.EventReportFailed, rpt)
	msg.Reason = reason
	return p.publish(ctx, msg)
}

func (p *implProducer) publish(ctx context.Context, msg kafkaDelivery.ReportEventMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", msg.EventType, err)
	}

	d, err := p.producer.Publish(ctx, pkgKafka.Message{
		Key:     msg.ReportID,
		Value:   body,
		Headers: map[string]string{kafkaDelivery.HeaderEventType: msg.EventType},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", msg.EventType, err)
	}

	p.l.Debugf(ctx, "report.delivery.kafka.producer.publish: Published %s for report %s at %d/%d",
		msg.EventType, msg.ReportID, d.Partition, d.Offset)
	return nil
}
