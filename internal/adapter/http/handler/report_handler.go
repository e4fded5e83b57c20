package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the transaction report.
type ReportHandler struct {
	reportSvc ports.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc ports.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Generate handles GET /api/v1/customers/:phone/report.
func (h *ReportHandler) Generate(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	report, err := h.reportSvc.Generate(c.Request.Context(), domain.ReportRequest{
		CustomerID: c.Param("phone"),
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}
