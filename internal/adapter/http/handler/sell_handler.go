package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SellHandler handles sell endpoints.
type SellHandler struct {
	walletSvc ports.WalletService
}

// NewSellHandler creates a new SellHandler.
func NewSellHandler(walletSvc ports.WalletService) *SellHandler {
	return &SellHandler{walletSvc: walletSvc}
}

// Record handles POST /api/v1/sells.
func (h *SellHandler) Record(c *gin.Context) {
	var req dto.SellRequest
	if !bindJSON(c, &req) {
		return
	}

	sell, err := h.walletSvc.RecordSell(c.Request.Context(), ports.SellRequest{
		CustomerID:    req.CustomerID,
		CashAmount:    req.CashAmount,
		GoldGrams:     req.GoldGrams,
		GatewayCharge: req.GatewayCharge,
		TaxAmount:     req.TaxAmount,
		OtherCharges:  req.OtherCharges,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sell)
}

// Approve handles POST /api/v1/sells/:id/approve. The response carries the
// customer's new balance.
func (h *SellHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	approval, err := h.walletSvc.ApproveSell(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, approval)
}

// Cancel handles POST /api/v1/sells/:id/cancel.
func (h *SellHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sell, err := h.walletSvc.CancelSell(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sell)
}
