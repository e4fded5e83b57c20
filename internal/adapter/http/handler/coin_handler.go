package handler

import (
	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// CoinHandler handles coin purchase endpoints.
type CoinHandler struct {
	walletSvc ports.WalletService
}

// NewCoinHandler creates a new CoinHandler.
func NewCoinHandler(walletSvc ports.WalletService) *CoinHandler {
	return &CoinHandler{walletSvc: walletSvc}
}

// Create handles POST /api/v1/coin-purchases.
func (h *CoinHandler) Create(c *gin.Context) {
	var req dto.CoinPurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]domain.CoinItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CoinItem{CoinGrams: it.CoinGrams, Quantity: it.Quantity, Amount: it.Amount})
	}

	coin, err := h.walletSvc.CreateCoinPurchase(c.Request.Context(), ports.CoinPurchaseRequest{
		CustomerID:     req.CustomerID,
		Items:          items,
		TotalAmount:    req.TotalAmount,
		TaxAmount:      req.TaxAmount,
		DeliveryCharge: req.DeliveryCharge,
		AmountPayable:  req.AmountPayable,
		InvestAmount:   req.InvestAmount,
		Address: domain.DeliveryAddress{
			Line:     req.Address.Line,
			City:     req.Address.City,
			PostCode: req.Address.PostCode,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, coin)
}

// Approve handles POST /api/v1/coin-purchases/:id/approve.
func (h *CoinHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	coin, err := h.walletSvc.ApproveCoinPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, coin)
}

// Cancel handles POST /api/v1/coin-purchases/:id/cancel.
func (h *CoinHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	coin, err := h.walletSvc.CancelCoinPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, coin)
}

// History handles GET /api/v1/customers/:phone/coin-purchases.
func (h *CoinHandler) History(c *gin.Context) {
	filter, ok := historyFilter(c)
	if !ok {
		return
	}
	history, err := h.walletSvc.CoinHistory(c.Request.Context(), c.Param("phone"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, history)
}
