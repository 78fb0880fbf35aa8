package http

import (
	"errors"

	"report-srv/internal/report"
	pkgErrors "report-srv/pkg/errors"
)

var (
	errInvalidDate         = pkgErrors.NewHTTPError(400, "Dates must use the YYYY-MM-DD format")
	errInvalidRange        = pkgErrors.NewHTTPError(400, "End date is before start date")
	errInvalidWeek         = pkgErrors.NewHTTPError(400, "Invalid ISO week")
	errInvalidMonth        = pkgErrors.NewHTTPError(400, "Invalid month")
	errUserIDRequired      = pkgErrors.NewHTTPError(400, "User ID is required")
	errProjectRequired     = pkgErrors.NewHTTPError(400, "Project ID is required")
	errClientRequired      = pkgErrors.NewHTTPError(400, "Contact ID or firm ID is required")
	errNoRecipients        = pkgErrors.NewHTTPError(400, "At least one recipient is required")
	errInvalidRecipient    = pkgErrors.NewHTTPError(400, "Invalid recipient email")
	errUserNotFound        = pkgErrors.NewHTTPError(404, "User not found")
	errReportNotFound      = pkgErrors.NewHTTPError(404, "Report not found")
	errNotSendable         = pkgErrors.NewHTTPError(409, "Report is not in a sendable status")
	errSendInProgress      = pkgErrors.NewHTTPError(409, "Report is already being sent")
	errDuplicateProcessing = pkgErrors.NewHTTPError(409, "Report is already being generated")
	errNotExportable       = pkgErrors.NewHTTPError(409, "Report has not been generated")
	errNoTemplate          = pkgErrors.NewHTTPError(422, "No template configured for this report kind")
	errAggregationFailed   = pkgErrors.NewHTTPError(500, "Report generation failed")
	errRenderFailed        = pkgErrors.NewHTTPError(500, "Report rendering failed")
	errExportFailed        = pkgErrors.NewHTTPError(500, "Report export failed")
	errQueueUnavailable    = pkgErrors.NewHTTPError(503, "Job queue is not available")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidRange):
		return errInvalidRange
	case errors.Is(err, report.ErrInvalidWeek):
		return errInvalidWeek
	case errors.Is(err, report.ErrInvalidMonth):
		return errInvalidMonth
	case errors.Is(err, report.ErrUserIDRequired):
		return errUserIDRequired
	case errors.Is(err, report.ErrProjectRequired):
		return errProjectRequired
	case errors.Is(err, report.ErrClientRequired):
		return errClientRequired
	case errors.Is(err, report.ErrNoRecipients):
		return errNoRecipients
	case errors.Is(err, report.ErrInvalidRecipient):
		return errInvalidRecipient
	case errors.Is(err, report.ErrUserNotFound):
		return errUserNotFound
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrNotSendable):
		return errNotSendable
	case errors.Is(err, report.ErrSendInProgress):
		return errSendInProgress
	case errors.Is(err, report.ErrDuplicateProcessing):
		return errDuplicateProcessing
	case errors.Is(err, report.ErrNotExportable):
		return errNotExportable
	case errors.Is(err, report.ErrNoTemplate):
		return errNoTemplate
	case errors.Is(err, report.ErrAggregationFailed):
		return errAggregationFailed
	case errors.Is(err, report.ErrRenderFailed):
		return errRenderFailed
	case errors.Is(err, report.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, report.ErrEnqueueFailed):
		return errQueueUnavailable
	default:
		panic(err)
	}
}
