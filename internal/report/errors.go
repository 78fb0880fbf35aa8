package report

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange        = errors.New("end date is before start date")
	ErrInvalidWeek         = errors.New("invalid ISO week")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrUserIDRequired      = errors.New("user_id is required")
	ErrUserNotFound        = errors.New("user not found")
	ErrProjectRequired     = errors.New("project_id is required")
	ErrClientRequired      = errors.New("contact_id or firm_id is required")
	ErrAggregationFailed   = errors.New("report aggregation failed")
	ErrDuplicateProcessing = errors.New("report for this window is already being generated")
	ErrReportNotFound      = errors.New("report not found")
	ErrNotSendable         = errors.New("report is not in a sendable status")
	ErrSendInProgress      = errors.New("report is already being sent")
	ErrNoRecipients        = errors.New("at least one recipient is required")
	ErrInvalidRecipient    = errors.New("invalid recipient email")
	ErrNoTemplate          = errors.New("no default active template for report kind")
	ErrRenderFailed        = errors.New("report rendering failed")
	ErrNotExportable       = errors.New("report has not been generated")
	ErrExportFailed        = errors.New("report export failed")
	ErrEnqueueFailed       = errors.New("failed to enqueue report job")
)

// AggregationError carries the cause of a failed aggregation.
// errors.Is(err, ErrAggregationFailed) holds for it.
type AggregationError struct {
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAggregationFailed, e.Cause)
}

func (e *AggregationError) Unwrap() error { return e.Cause }

func (e *AggregationError) Is(target error) bool { return target == ErrAggregationFailed }

// DeliveryError is a failed hand-off to one recipient. It is recorded on the
// recipient and never returned from Send.
type DeliveryError struct {
	Email string
	Cause error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Email, e.Cause)
}

func (e *DeliveryError) Unwrap() error { return e.Cause }
