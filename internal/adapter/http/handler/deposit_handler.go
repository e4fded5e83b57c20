package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles deposit (buy) endpoints.
type DepositHandler struct {
	walletSvc ports.WalletService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(walletSvc ports.WalletService) *DepositHandler {
	return &DepositHandler{walletSvc: walletSvc}
}

// Record handles POST /api/v1/deposits.
func (h *DepositHandler) Record(c *gin.Context) {
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.walletSvc.RecordDeposit(c.Request.Context(), ports.DepositRequest{
		CustomerID:      req.CustomerID,
		CashAmount:      req.CashAmount,
		Grams:           req.Grams,
		AllocatedGrams:  req.AllocatedGrams,
		AllocatedAmount: req.AllocatedAmount,
		TaxAmount:       req.TaxAmount,
		DeliveryCharge:  req.DeliveryCharge,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Confirm handles POST /api/v1/deposits/:id/confirm.
func (h *DepositHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.walletSvc.ConfirmDeposit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// Cancel handles POST /api/v1/deposits/:id/cancel.
func (h *DepositHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := h.walletSvc.CancelDeposit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// List handles GET /api/v1/customers/:phone/deposits.
func (h *DepositHandler) List(c *gin.Context) {
	filter, ok := historyFilter(c)
	if !ok {
		return
	}
	page, err := h.walletSvc.ListDeposits(c.Request.Context(), c.Param("phone"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, page)
}
