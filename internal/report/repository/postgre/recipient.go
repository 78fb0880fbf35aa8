package postgre

import (
	"context"
	"database/sql"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// CreateRecipient - Insert a recipient row.
func (r *implRepository) CreateRecipient(ctx context.Context, rcp model.ReportRecipient) error {
	if _, err := r.db.ExecContext(ctx, insertRecipientQuery,
		rcp.ID, rcp.ReportID, nullString(rcp.ContactID), rcp.Email, rcp.Name, string(rcp.Status),
		rcp.DeliveryNotes, nullTime(rcp.SentAt), rcp.CreatedAt); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CreateRecipient: Failed to insert recipient %s: %v", rcp.Email, err)
		return repository.ErrRecipientCreateFailed
	}
	return nil
}

// UpdateRecipient - Store the delivery outcome of a recipient.
func (r *implRepository) UpdateRecipient(ctx context.Context, rcp model.ReportRecipient) error {
	res, err := r.db.ExecContext(ctx, updateRecipientQuery,
		string(rcp.Status), rcp.DeliveryNotes, nullTime(rcp.SentAt), rcp.ID)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.UpdateRecipient: Failed to update recipient %s: %v", rcp.ID, err)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrRecipientNotFound
	}
	return nil
}

// ListRecipients - Recipients of a report in creation order.
func (r *implRepository) ListRecipients(ctx context.Context, reportID string) ([]model.ReportRecipient, error) {
	rows, err := r.db.QueryContext(ctx, listRecipientsQuery, reportID)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListRecipients: Failed to list recipients: %v", err)
		return nil, err
	}
	defer rows.Close()

	recipients := make([]model.ReportRecipient, 0)
	for rows.Next() {
		var (
			rcp       model.ReportRecipient
			contactID sql.NullString
			status    string
			sentAt    sql.NullTime
		)
		if err := rows.Scan(&rcp.ID, &rcp.ReportID, &contactID, &rcp.Email, &rcp.Name, &status,
			&rcp.DeliveryNotes, &sentAt, &rcp.CreatedAt); err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.ListRecipients: Failed to scan recipient: %v", err)
			return nil, err
		}
		rcp.ContactID = contactID.String
		rcp.Status = model.DeliveryStatus(status)
		if sentAt.Valid {
			rcp.SentAt = &sentAt.Time
		}
		recipients = append(recipients, rcp)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.ListRecipients: Rows error: %v", err)
		return nil, err
	}

	return recipients, nil
}
