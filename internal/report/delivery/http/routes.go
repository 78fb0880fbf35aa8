package http

import (
	"report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/reports")
	api.Use(mw.Scope())
	{
		api.POST("/weekly", h.GenerateWeekly)
		api.POST("/monthly", h.GenerateMonthly)
		api.POST("/custom", h.GenerateCustom)
		api.POST("/project", h.GenerateProject)
		api.POST("/client", h.GenerateClient)
		api.POST("/automatic", h.GenerateAutomatic)

		api.GET("", h.ListReports)
		api.GET("/:report_id", h.GetReport)
		api.POST("/:report_id/send", h.SendReport)
		api.GET("/:report_id/export", h.ExportReport)
	}
}
