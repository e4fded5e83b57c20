package handler

import (
	"time"

	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/domain"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON binds and sanitizes a request body, writing a VAL_001 response
// on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// historyFilter reads the shared history query string. Dates are civil
// days in the report zone; To covers the whole day.
func historyFilter(c *gin.Context) (domain.HistoryFilter, bool) {
	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return domain.HistoryFilter{}, false
	}

	f := domain.HistoryFilter{Status: q.Status, Page: q.Page, Limit: q.Limit}
	if q.From != "" {
		from, _ := time.ParseInLocation(time.DateOnly, q.From, domain.ReportZone)
		f.From = &from
	}
	if q.To != "" {
		to, _ := time.ParseInLocation(time.DateOnly, q.To, domain.ReportZone)
		to = to.Add(24*time.Hour - time.Millisecond)
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		response.Error(c, apperror.Validation("from must not be after to"))
		return domain.HistoryFilter{}, false
	}
	return f, true
}
