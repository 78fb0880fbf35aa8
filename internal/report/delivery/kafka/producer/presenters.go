package producer

import (
	"report-srv/internal/model"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
	"report-srv/pkg/util"
)

func (p *implProducer) toMessage(eventType string, rpt model.Report) kafkaDelivery.ReportEventMessage {
	return kafkaDelivery.ReportEventMessage{
		EventType:      eventType,
		ReportID:       rpt.ID,
		UserID:         rpt.UserID,
		Kind:           string(rpt.Kind),
		Status:         string(rpt.Status),
		Title:          rpt.Title,
		StartDate:      util.DateToStr(rpt.StartDate),
		EndDate:        util.DateToStr(rpt.EndDate),
		TotalHours:     rpt.TotalHours.StringFixed(2),
		TotalTasks:     rpt.TotalTasks,
		CompletedTasks: rpt.CompletedTasks,
		OccurredAt:     p.clock.Now().UTC(),
	}
}
