package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditRoutes maps a gin route template to its audit action and resource.
var auditRoutes = map[string]struct {
	action   domain.AuditAction
	resource string
}{
	"POST /api/v1/customers":                  {domain.AuditActionRegisterCustomer, "customer"},
	"POST /api/v1/deposits/:id/confirm":       {domain.AuditActionConfirmDeposit, "deposit"},
	"POST /api/v1/deposits/:id/cancel":        {domain.AuditActionCancelDeposit, "deposit"},
	"POST /api/v1/sells/:id/approve":          {domain.AuditActionApproveSell, "sell"},
	"POST /api/v1/sells/:id/cancel":           {domain.AuditActionCancelSell, "sell"},
	"POST /api/v1/coin-purchases/:id/approve": {domain.AuditActionApproveCoin, "coin_purchase"},
	"POST /api/v1/coin-purchases/:id/cancel":  {domain.AuditActionCancelCoin, "coin_purchase"},
	"POST /api/v1/allotments":                 {domain.AuditActionAllot, "allotment"},
	"POST /api/v1/rates":                      {domain.AuditActionRecordRate, "rate"},
	"POST /api/v1/rates/refresh":              {domain.AuditActionRecordRate, "rate"},
}

// AuditLog records successful operator mutations after the handler ran.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": status,
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Actor:        c.GetString(CtxSubject),
			Action:       route.action,
			ResourceType: route.resource,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
