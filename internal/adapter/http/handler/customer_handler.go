package handler

import (
	"time"

	"gold-ledger/internal/adapter/http/dto"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer registration and balance reads.
type CustomerHandler struct {
	walletSvc ports.WalletService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(walletSvc ports.WalletService) *CustomerHandler {
	return &CustomerHandler{walletSvc: walletSvc}
}

// Register handles POST /api/v1/customers.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req dto.RegisterCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.walletSvc.RegisterCustomer(c.Request.Context(), req.Phone, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, customer)
}

// Balance handles GET /api/v1/customers/:phone/balance.
func (h *CustomerHandler) Balance(c *gin.Context) {
	balance, err := h.walletSvc.LatestBalance(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toBalanceResponse(balance))
}

func toBalanceResponse(b *domain.Balance) dto.BalanceResponse {
	resp := dto.BalanceResponse{
		CustomerID: b.CustomerID,
		Cash:       b.Cash,
		Grams:      b.Grams,
		Version:    b.Version,
	}
	if !b.UpdatedAt.IsZero() {
		s := b.UpdatedAt.UTC().Format(time.RFC3339)
		resp.UpdatedAt = &s
	}
	return resp
}
