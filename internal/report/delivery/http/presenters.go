package http

import (
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/paginator"
	"report-srv/pkg/util"
)

type generateWeeklyReq struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Week   int    `json:"week"`
	// Queue hands the job to the background consumer instead of generating inline.
	Queue bool `json:"queue"`
}

func (r generateWeeklyReq) toInput() report.GenerateWeeklyInput {
	return report.GenerateWeeklyInput{
		UserID: r.UserID,
		Year:   r.Year,
		Week:   r.Week,
	}
}

type generateMonthlyReq struct {
	UserID string `json:"user_id"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

func (r generateMonthlyReq) toInput() report.GenerateMonthlyInput {
	return report.GenerateMonthlyInput{
		UserID: r.UserID,
		Year:   r.Year,
		Month:  r.Month,
	}
}

type dateRange struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (r dateRange) parse() (start, end time.Time, err error) {
	if start, err = util.StrToDate(r.StartDate); err != nil {
		return start, end, errInvalidDate
	}
	if end, err = util.StrToDate(r.EndDate); err != nil {
		return start, end, errInvalidDate
	}
	return start, end, nil
}

type filtersReq struct {
	ContactID string `json:"contact_id"`
	FirmID    string `json:"firm_id"`
	ProjectID string `json:"project_id"`
}

type generateCustomReq struct {
	dateRange
	UserID      string      `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Filters     *filtersReq `json:"filters"`
}

func (r generateCustomReq) toInput(start, end time.Time) report.GenerateCustomInput {
	input := report.GenerateCustomInput{
		UserID:      r.UserID,
		StartDate:   start,
		EndDate:     end,
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Filters != nil {
		input.Filters = model.ReportFilters{
			ContactID: r.Filters.ContactID,
			FirmID:    r.Filters.FirmID,
			ProjectID: r.Filters.ProjectID,
		}
	}
	return input
}

type generateProjectReq struct {
	dateRange
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id" binding:"required"`
}

func (r generateProjectReq) toInput(start, end time.Time) report.GenerateProjectInput {
	return report.GenerateProjectInput{
		UserID:    r.UserID,
		ProjectID: r.ProjectID,
		StartDate: start,
		EndDate:   end,
	}
}

type generateClientReq struct {
	dateRange
	UserID    string `json:"user_id"`
	ContactID string `json:"contact_id"`
	FirmID    string `json:"firm_id"`
}

func (r generateClientReq) toInput(start, end time.Time) report.GenerateClientInput {
	return report.GenerateClientInput{
		UserID:    r.UserID,
		ContactID: r.ContactID,
		FirmID:    r.FirmID,
		StartDate: start,
		EndDate:   end,
	}
}

type recipientReq struct {
	Email     string `json:"email" binding:"required"`
	Name      string `json:"name"`
	ContactID string `json:"contact_id"`
}

type sendReportReq struct {
	ReportID   string
	Recipients []recipientReq `json:"recipients" binding:"required,dive"`
}

func (r sendReportReq) toInput() report.SendInput {
	recipients := make([]report.RecipientInput, 0, len(r.Recipients))
	for _, rcp := range r.Recipients {
		recipients = append(recipients, report.RecipientInput{
			Email:     rcp.Email,
			Name:      rcp.Name,
			ContactID: rcp.ContactID,
		})
	}
	return report.SendInput{
		ReportID:   r.ReportID,
		Recipients: recipients,
	}
}

type listReportsReq struct {
	paginator.Query
	UserID string `form:"user_id"`
	Status string `form:"status"`
	Kind   string `form:"kind"`
}

func (r listReportsReq) toInput() report.ListReportsInput {
	return report.ListReportsInput{
		UserID: r.UserID,
		Status: model.ReportStatus(r.Status),
		Kind:   model.ReportKind(r.Kind),
		Limit:  r.Limit,
		Offset: r.Offset(),
	}
}

type reportResp struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	Kind           string              `json:"kind"`
	Status         string              `json:"status"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	WeekNumber     int                 `json:"week_number,omitempty"`
	Year           int                 `json:"year,omitempty"`
	Month          int                 `json:"month,omitempty"`
	Filters        model.ReportFilters `json:"filters"`
	TotalHours     string              `json:"total_hours"`
	TotalTasks     int                 `json:"total_tasks"`
	CompletedTasks int                 `json:"completed_tasks"`
	Metadata       map[string]any      `json:"metadata,omitempty"`
	ErrorMessage   string              `json:"error_message,omitempty"`
	GeneratedAt    *string             `json:"generated_at,omitempty"`
	SentAt         *string             `json:"sent_at,omitempty"`
	CreatedAt      string              `json:"created_at"`
}

type taskResp struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	ActualHours *string `json:"actual_hours,omitempty"`
}

type itemResp struct {
	ProjectID          string     `json:"project_id"`
	ProjectName        string     `json:"project_name"`
	ContactName        string     `json:"contact_name,omitempty"`
	FirmName           string     `json:"firm_name,omitempty"`
	TotalHours         string     `json:"total_hours"`
	TaskCount          int        `json:"task_count"`
	CompletedTaskCount int        `json:"completed_task_count"`
	Notes              string     `json:"notes"`
	Tasks              []taskResp `json:"tasks"`
}

type recipientResp struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name,omitempty"`
	ContactID     string  `json:"contact_id,omitempty"`
	Status        string  `json:"status"`
	DeliveryNotes string  `json:"delivery_notes,omitempty"`
	SentAt        *string `json:"sent_at,omitempty"`
}

type reportDetailResp struct {
	Report     reportResp      `json:"report"`
	Items      []itemResp      `json:"items"`
	Recipients []recipientResp `json:"recipients"`
}

type generateAutomaticResp struct {
	Count   int          `json:"count"`
	Reports []reportResp `json:"reports"`
}

type queuedResp struct {
	Queued bool   `json:"queued"`
	UserID string `json:"user_id"`
	Year   int    `json:"year,omitempty"`
	Week   int    `json:"week,omitempty"`
}

type sendResp struct {
	Success    bool            `json:"success"`
	Partial    bool            `json:"partial"`
	Status     string          `json:"status"`
	SentCount  int             `json:"sent_count"`
	Total      int             `json:"total"`
	Recipients []recipientResp `json:"recipients"`
}

type listReportsResp struct {
	Reports   []reportResp   `json:"reports"`
	Paginator paginator.Page `json:"paginator"`
}

type exportResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
}

func timePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func (h *handler) newReportResp(r model.Report) reportResp {
	return reportResp{
		ID:             r.ID,
		UserID:         r.UserID,
		Title:          r.Title,
		Description:    r.Description,
		Kind:           string(r.Kind),
		Status:         string(r.Status),
		StartDate:      util.DateToStr(r.StartDate),
		EndDate:        util.DateToStr(r.EndDate),
		WeekNumber:     r.WeekNumber,
		Year:           r.Year,
		Month:          r.Month,
		Filters:        r.Filters,
		TotalHours:     r.TotalHours.StringFixed(2),
		TotalTasks:     r.TotalTasks,
		CompletedTasks: r.CompletedTasks,
		Metadata:       r.Metadata,
		ErrorMessage:   r.ErrorMessage,
		GeneratedAt:    timePtr(r.GeneratedAt),
		SentAt:         timePtr(r.SentAt),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newItemResp(i model.ReportItem) itemResp {
	tasks := make([]taskResp, 0, len(i.Tasks))
	for _, t := range i.Tasks {
		task := taskResp{ID: t.ID, Name: t.Name, Status: t.Status, Priority: t.Priority}
		if t.ActualHours != nil {
			s := t.ActualHours.StringFixed(2)
			task.ActualHours = &s
		}
		tasks = append(tasks, task)
	}
	return itemResp{
		ProjectID:          i.ProjectID,
		ProjectName:        i.ProjectName,
		ContactName:        i.ContactName,
		FirmName:           i.FirmName,
		TotalHours:         i.TotalHours.StringFixed(2),
		TaskCount:          i.TaskCount,
		CompletedTaskCount: i.CompletedTaskCount,
		Notes:              i.Notes,
		Tasks:              tasks,
	}
}

func (h *handler) newRecipientsResp(rs []model.ReportRecipient) []recipientResp {
	out := make([]recipientResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, recipientResp{
			ID:            r.ID,
			Email:         r.Email,
			Name:          r.Name,
			ContactID:     r.ContactID,
			Status:        string(r.Status),
			DeliveryNotes: r.DeliveryNotes,
			SentAt:        timePtr(r.SentAt),
		})
	}
	return out
}

func (h *handler) newReportDetailResp(o report.ReportOutput) reportDetailResp {
	items := make([]itemResp, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, h.newItemResp(i))
	}
	return reportDetailResp{
		Report:     h.newReportResp(o.Report),
		Items:      items,
		Recipients: h.newRecipientsResp(o.Recipients),
	}
}

func (h *handler) newGenerateAutomaticResp(outs []report.ReportOutput) generateAutomaticResp {
	reports := make([]reportResp, 0, len(outs))
	for _, o := range outs {
		reports = append(reports, h.newReportResp(o.Report))
	}
	return generateAutomaticResp{Count: len(reports), Reports: reports}
}

func (h *handler) newSendResp(o report.SendOutput) sendResp {
	return sendResp{
		Success:    o.Success,
		Partial:    o.Partial,
		Status:     string(o.Status),
		SentCount:  o.SentCount,
		Total:      o.Total,
		Recipients: h.newRecipientsResp(o.Recipients),
	}
}

func (h *handler) newListReportsResp(o report.ListReportsOutput) listReportsResp {
	reports := make([]reportResp, 0, len(o.Reports))
	for _, r := range o.Reports {
		reports = append(reports, h.newReportResp(r))
	}
	return listReportsResp{
		Reports:   reports,
		Paginator: paginator.FromOffset(o.Total, len(reports), o.Limit, o.Offset),
	}
}

func (h *handler) newExportResp(o report.ExportOutput) exportResp {
	return exportResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt.UTC().Format(time.RFC3339),
		FileName:    o.FileName,
		FileSize:    o.FileSize,
		ContentType: o.ContentType,
	}
}

func getReportInput(id string) report.GetReportInput {
	return report.GetReportInput{ReportID: id}
}

func exportReportInput(id string) report.ExportReportInput {
	return report.ExportReportInput{ReportID: id}
}
