package http

import (
	"context"
	"time"

	"report-srv/internal/model"
	"report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// callerScope returns the scope the Scope middleware stored. Routes are only mounted behind it.
func callerScope(ctx context.Context) model.Scope {
	sc, _ := scope.FromContext(ctx)
	return sc
}

func (h *handler) processGenerateWeeklyRequest(c *gin.Context) (generateWeeklyReq, model.Scope, error) {
	var req generateWeeklyReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateWeeklyRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := callerScope(ctx)
	return req, sc, nil
}

func (h *handler) processGenerateMonthlyRequest(c *gin.Context) (generateMonthlyReq, model.Scope, error) {
	var req generateMonthlyReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateMonthlyRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := callerScope(ctx)
	return req, sc, nil
}

func (h *handler) processGenerateCustomRequest(c *gin.Context) (generateCustomReq, time.Time, time.Time, model.Scope, error) {
	var req generateCustomReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateCustomRequest: ShouldBindJSON failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	start, end, err := req.parse()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateCustomRequest: parse dates failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	sc := callerScope(ctx)
	return req, start, end, sc, nil
}

func (h *handler) processGenerateProjectRequest(c *gin.Context) (generateProjectReq, time.Time, time.Time, model.Scope, error) {
	var req generateProjectReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateProjectRequest: ShouldBindJSON failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	start, end, err := req.parse()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateProjectRequest: parse dates failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	sc := callerScope(ctx)
	return req, start, end, sc, nil
}

func (h *handler) processGenerateClientRequest(c *gin.Context) (generateClientReq, time.Time, time.Time, model.Scope, error) {
	var req generateClientReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateClientRequest: ShouldBindJSON failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	start, end, err := req.parse()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processGenerateClientRequest: parse dates failed: %v", err)
		return req, time.Time{}, time.Time{}, model.Scope{}, err
	}

	sc := callerScope(ctx)
	return req, start, end, sc, nil
}

func (h *handler) processSendReportRequest(c *gin.Context) (sendReportReq, model.Scope, error) {
	var req sendReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processSendReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.ReportID = c.Param("report_id")

	sc := callerScope(ctx)
	return req, sc, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}
	req.Query = req.Query.Normalize()

	sc := callerScope(ctx)
	return req, sc, nil
}

func (h *handler) processReportIDRequest(c *gin.Context) (string, model.Scope) {
	return c.Param("report_id"), callerScope(c.Request.Context())
}
