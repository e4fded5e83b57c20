package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RateHandler exposes the rate oracle and the charge settings.
type RateHandler struct {
	rates     ports.RateOracle
	walletSvc ports.WalletService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rates ports.RateOracle, walletSvc ports.WalletService) *RateHandler {
	return &RateHandler{rates: rates, walletSvc: walletSvc}
}

// Current handles GET /api/v1/rates/current.
func (h *RateHandler) Current(c *gin.Context) {
	rate, err := h.rates.CurrentRate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rate)
}

// History handles GET /api/v1/rates.
func (h *RateHandler) History(c *gin.Context) {
	history, err := h.rates.History(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, history)
}

// Convert handles GET /api/v1/rates/convert?grams=.
func (h *RateHandler) Convert(c *gin.Context) {
	grams, err := decimal.NewFromString(c.Query("grams"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidGrams())
		return
	}
	conv, err := h.rates.ConvertGrams(c.Request.Context(), grams)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, conv)
}

// Record handles POST /api/v1/rates.
func (h *RateHandler) Record(c *gin.Context) {
	var req dto.RecordRateRequest
	if !bindJSON(c, &req) {
		return
	}
	sample, err := h.rates.RecordRate(c.Request.Context(), req.PricePerGram, req.Timestamp)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sample)
}

// Refresh handles POST /api/v1/rates/refresh.
func (h *RateHandler) Refresh(c *gin.Context) {
	sample, err := h.rates.RefreshRate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sample)
}

// Charges handles GET /api/v1/charges.
func (h *RateHandler) Charges(c *gin.Context) {
	charges, err := h.walletSvc.Charges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, charges)
}
