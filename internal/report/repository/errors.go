package repository

import "errors"

var (
	ErrReportNotFound        = errors.New("repository: report not found")
	ErrReportCreateFailed    = errors.New("repository: failed to create report")
	ErrReportUpdateFailed    = errors.New("repository: failed to update report")
	ErrStatusConflict        = errors.New("repository: report status changed concurrently")
	ErrRecipientNotFound     = errors.New("repository: recipient not found")
	ErrRecipientCreateFailed = errors.New("repository: failed to create recipient")
)
