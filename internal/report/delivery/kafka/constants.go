package kafka

// Event types carried in the event_type header and message body.
const (
	EventReportGenerated = "report.generated"
	EventReportSent      = "report.sent"
	EventReportFailed    = "report.failed"
)

const HeaderEventType = "event_type"
