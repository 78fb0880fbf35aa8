package http

import (
	"net/http"

	"report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a weekly report
// @Description Aggregate one ISO week of activity, or queue the job when queue is true
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateWeeklyReq true "Weekly report request"
// @Success 200 {object} reportDetailResp
// @Success 202 {object} queuedResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/reports/weekly [post]
func (h *handler) GenerateWeekly(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateWeeklyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateWeekly: processGenerateWeeklyRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	if req.Queue {
		h.enqueueWeekly(c, req, sc.UserID)
		return
	}

	o, err := h.uc.GenerateWeekly(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateWeekly: usecase GenerateWeekly failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

func (h *handler) enqueueWeekly(c *gin.Context, req generateWeeklyReq, scopeUserID string) {
	ctx := c.Request.Context()
	if h.queue == nil {
		response.Error(c, errQueueUnavailable)
		return
	}

	input := req.toInput()
	if input.UserID == "" {
		input.UserID = scopeUserID
	}
	if err := h.queue.EnqueueWeekly(ctx, input); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateWeekly: EnqueueWeekly failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusAccepted, response.Resp{
		Message: response.MessageSuccess,
		Data:    queuedResp{Queued: true, UserID: input.UserID, Year: input.Year, Week: input.Week},
	})
}

// @Summary Generate a monthly report
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateMonthlyReq true "Monthly report request"
// @Success 200 {object} reportDetailResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/monthly [post]
func (h *handler) GenerateMonthly(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateMonthlyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateMonthly: processGenerateMonthlyRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GenerateMonthly(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateMonthly: usecase GenerateMonthly failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

// @Summary Generate a report over a date range
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateCustomReq true "Custom report request"
// @Success 200 {object} reportDetailResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/custom [post]
func (h *handler) GenerateCustom(c *gin.Context) {
	ctx := c.Request.Context()

	req, start, end, sc, err := h.processGenerateCustomRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateCustom: processGenerateCustomRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GenerateCustom(ctx, sc, req.toInput(start, end))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateCustom: usecase GenerateCustom failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

// @Summary Generate a report for one project
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateProjectReq true "Project report request"
// @Success 200 {object} reportDetailResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/project [post]
func (h *handler) GenerateProject(c *gin.Context) {
	ctx := c.Request.Context()

	req, start, end, sc, err := h.processGenerateProjectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateProject: processGenerateProjectRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GenerateProject(ctx, sc, req.toInput(start, end))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateProject: usecase GenerateProject failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

// @Summary Generate a report for one contact or firm
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateClientReq true "Client report request"
// @Success 200 {object} reportDetailResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/client [post]
func (h *handler) GenerateClient(c *gin.Context) {
	ctx := c.Request.Context()

	req, start, end, sc, err := h.processGenerateClientRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateClient: processGenerateClientRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GenerateClient(ctx, sc, req.toInput(start, end))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateClient: usecase GenerateClient failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

// @Summary Generate last week's reports for every eligible user
// @Tags Report
// @Produce json
// @Success 200 {object} generateAutomaticResp
// @Router /api/v1/reports/automatic [post]
func (h *handler) GenerateAutomatic(c *gin.Context) {
	ctx := c.Request.Context()

	outs, err := h.uc.GenerateAutomatic(ctx)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GenerateAutomatic: usecase GenerateAutomatic failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateAutomaticResp(outs))
}

// @Summary Send a generated report
// @Tags Report
// @Accept json
// @Produce json
// @Param report_id path string true "Report ID"
// @Param body body sendReportReq true "Recipients"
// @Success 200 {object} sendResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/reports/{report_id}/send [post]
func (h *handler) SendReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSendReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SendReport: processSendReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SendReport: usecase Send failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(o))
}

// @Summary Get a report with its items and recipients
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} reportDetailResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{report_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, sc := h.processReportIDRequest(c)
	o, err := h.uc.GetReport(ctx, sc, getReportInput(reportID))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportDetailResp(o))
}

// @Summary List reports
// @Tags Report
// @Produce json
// @Param user_id query string false "User ID"
// @Param status query string false "Status"
// @Param kind query string false "Kind"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} listReportsResp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.ListReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Export a report document
// @Description Render the report, store it and return a presigned download URL
// @Tags Report
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} exportResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/reports/{report_id}/export [get]
func (h *handler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, sc := h.processReportIDRequest(c)
	o, err := h.uc.ExportReport(ctx, sc, exportReportInput(reportID))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ExportReport: usecase ExportReport failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportResp(o))
}
