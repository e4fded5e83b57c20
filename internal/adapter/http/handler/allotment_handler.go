package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AllotmentHandler handles gram allotment endpoints.
type AllotmentHandler struct {
	allotSvc ports.AllotmentService
}

// NewAllotmentHandler creates a new AllotmentHandler.
func NewAllotmentHandler(allotSvc ports.AllotmentService) *AllotmentHandler {
	return &AllotmentHandler{allotSvc: allotSvc}
}

// Allot handles POST /api/v1/allotments.
func (h *AllotmentHandler) Allot(c *gin.Context) {
	var req dto.AllotRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.allotSvc.Allot(c.Request.Context(), req.CustomerID, req.Grams)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ByCustomer handles GET /api/v1/customers/:phone/allotments.
func (h *AllotmentHandler) ByCustomer(c *gin.Context) {
	views, err := h.allotSvc.ByCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, views)
}
