package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType int16

// Ledger entry types
const (
	TransactionTypeDeposit    TransactionType = 1
	TransactionTypeRefund     TransactionType = 2
	TransactionTypeRelease    TransactionType = 3
	TransactionTypeWithdrawal TransactionType = 4
	TransactionTypePurchase   TransactionType = 5
	TransactionTypeHold       TransactionType = 6
)

// String returns the type name.
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "DEPOSIT"
	case TransactionTypeRefund:
		return "REFUND"
	case TransactionTypeRelease:
		return "RELEASE"
	case TransactionTypeWithdrawal:
		return "WITHDRAWAL"
	case TransactionTypePurchase:
		return "PURCHASE"
	case TransactionTypeHold:
		return "HOLD"
	default:
		return "UNKNOWN"
	}
}

// TransactionDirection carries the sign of a ledger entry.
type TransactionDirection int16

// Ledger entry directions
const (
	DirectionCredit TransactionDirection = 1
	DirectionDebit  TransactionDirection = 2
)

// String returns the direction name.
func (d TransactionDirection) String() string {
	switch d {
	case DirectionCredit:
		return "CREDIT"
	case DirectionDebit:
		return "DEBIT"
	default:
		return "UNKNOWN"
	}
}

// WalletTransaction is an append-only ledger entry. Rows are inserted once and never updated.
type WalletTransaction struct {
	ID            int64                `json:"id" db:"id"`                         // Primary key
	WalletID      int64                `json:"wallet_id" db:"wallet_id"`           // Wallet the entry belongs to
	Type          TransactionType      `json:"type" db:"transaction_type"`         // Business type of the mutation
	Direction     TransactionDirection `json:"direction" db:"direction"`           // CREDIT or DEBIT
	Amount        decimal.Decimal      `json:"amount" db:"amount"`                 // Always positive
	BalanceBefore decimal.Decimal      `json:"balance_before" db:"balance_before"` // Wallet balance before the mutation
	BalanceAfter  decimal.Decimal      `json:"balance_after" db:"balance_after"`   // Wallet balance after the mutation
	PendingBefore decimal.Decimal      `json:"pending_before" db:"pending_before"` // Pending balance before the mutation
	PendingAfter  decimal.Decimal      `json:"pending_after" db:"pending_after"`   // Pending balance after the mutation
	ReferenceID   int64                `json:"reference_id" db:"reference_id"`     // Business record that caused the entry
	CreatedAt     time.Time            `json:"created_at" db:"created_at"`         // Insert timestamp
}

// SignedAmount returns the amount with the direction applied.
func (t *WalletTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// LedgerEvent is the message published for every applied ledger entry.
type LedgerEvent struct {
	TransactionID int64           `json:"transaction_id"` // Ledger entry id
	WalletID      int64           `json:"wallet_id"`      // Wallet the entry belongs to
	UserID        int64           `json:"user_id"`        // Wallet owner
	Type          string          `json:"type"`           // e.g. "DEPOSIT"
	Direction     string          `json:"direction"`      // "CREDIT" or "DEBIT"
	Amount        decimal.Decimal `json:"amount"`         // Always positive
	BalanceAfter  decimal.Decimal `json:"balance_after"`  // Wallet balance after the entry
	ReferenceID   int64           `json:"reference_id"`   // Business record that caused the entry
	Timestamp     int64           `json:"timestamp"`      // Unix seconds of the ledger insert
}

// NewLedgerEvent builds the event for an applied ledger entry of userID's wallet.
func NewLedgerEvent(userID int64, tx *WalletTransaction) LedgerEvent {
	return LedgerEvent{
		TransactionID: tx.ID,
		WalletID:      tx.WalletID,
		UserID:        userID,
		Type:          tx.Type.String(),
		Direction:     tx.Direction.String(),
		Amount:        tx.Amount,
		BalanceAfter:  tx.BalanceAfter,
		ReferenceID:   tx.ReferenceID,
		Timestamp:     tx.CreatedAt.Unix(),
	}
}
