package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositRequestStatus is the lifecycle state of a deposit request.
type DepositRequestStatus int16

// Deposit request statuses. PENDING is the only non-terminal one.
const (
	DepositStatusPending   DepositRequestStatus = 1
	DepositStatusApproved  DepositRequestStatus = 2
	DepositStatusRejected  DepositRequestStatus = 3
	DepositStatusCancelled DepositRequestStatus = 4
)

// String returns the status name.
func (s DepositRequestStatus) String() string {
	switch s {
	case DepositStatusPending:
		return "PENDING"
	case DepositStatusApproved:
		return "APPROVED"
	case DepositStatusRejected:
		return "REJECTED"
	case DepositStatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// DepositRequest represents a deposit_requests row in the database
type DepositRequest struct {
	ID                int64                `json:"id" db:"id"`                                 // Primary key
	UserID            int64                `json:"user_id" db:"user_id"`                       // Owner of the request
	Amount            decimal.Decimal      `json:"amount" db:"amount"`                         // Amount to credit, always positive
	TransactionCode   string               `json:"transaction_code" db:"transaction_code"`     // Bank transfer code supplied by the user
	TransferReference string               `json:"transfer_reference" db:"transfer_reference"` // Human readable reference
	Status            DepositRequestStatus `json:"status" db:"status"`                         // Lifecycle state
	AdminNote         string               `json:"admin_note" db:"admin_note"`                 // Note left by the processing admin
	RejectReason      string               `json:"reject_reason" db:"reject_reason"`           // Reason of rejection or cancellation
	ProcessedBy       *int64               `json:"processed_by,omitempty" db:"processed_by"`   // User that resolved the request
	ProcessedAt       *time.Time           `json:"processed_at,omitempty" db:"processed_at"`   // When the request was resolved
	CreatedAt         time.Time            `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt         time.Time            `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}

// IsPending reports whether the request can still be resolved.
func (r *DepositRequest) IsPending() bool {
	return r.Status == DepositStatusPending
}

// Resolve moves the request into a terminal status on behalf of processedBy.
func (r *DepositRequest) Resolve(status DepositRequestStatus, processedBy int64, at time.Time) {
	r.Status = status
	r.ProcessedBy = &processedBy
	r.ProcessedAt = &at
}

// ApprovalResult is returned after a deposit request has been approved.
type ApprovalResult struct {
	DepositID     int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	WalletID      int64           `json:"wallet_id"`
	TransactionID int64           `json:"transaction_id"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	ProcessedBy   int64           `json:"processed_by"`
	ProcessedAt   time.Time       `json:"processed_at"`
}
