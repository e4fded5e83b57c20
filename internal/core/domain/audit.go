package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited operator action.
type AuditAction string

const (
	AuditActionRegisterCustomer AuditAction = "REGISTER_CUSTOMER"
	AuditActionConfirmDeposit   AuditAction = "CONFIRM_DEPOSIT"
	AuditActionCancelDeposit    AuditAction = "CANCEL_DEPOSIT"
	AuditActionApproveSell      AuditAction = "APPROVE_SELL"
	AuditActionCancelSell       AuditAction = "CANCEL_SELL"
	AuditActionApproveCoin      AuditAction = "APPROVE_COIN"
	AuditActionCancelCoin       AuditAction = "CANCEL_COIN"
	AuditActionAllot            AuditAction = "ALLOT"
	AuditActionRecordRate       AuditAction = "RECORD_RATE"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
