package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletStatus is the persisted state of a wallet.
type WalletStatus int16

// Supported wallet statuses
const (
	WalletStatusActive WalletStatus = 1 // Wallet accepts balance mutations
	WalletStatusFrozen WalletStatus = 2 // Wallet is temporarily blocked
	WalletStatusClosed WalletStatus = 3 // Wallet is closed for good
)

// String returns the status name.
func (s WalletStatus) String() string {
	switch s {
	case WalletStatusActive:
		return "ACTIVE"
	case WalletStatusFrozen:
		return "FROZEN"
	case WalletStatusClosed:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Wallet represents a wallet row in the database
type Wallet struct {
	ID             int64           `json:"id" db:"id"`                           // Unique wallet identifier
	UserID         int64           `json:"user_id" db:"user_id"`                 // Identifier of the wallet's owner (1:1)
	Balance        decimal.Decimal `json:"balance" db:"balance"`                 // Total balance
	PendingBalance decimal.Decimal `json:"pending_balance" db:"pending_balance"` // Part of the balance on hold
	Status         WalletStatus    `json:"status" db:"status"`                   // Wallet status
	Version        int64           `json:"version" db:"version"`                 // Bumped on every persisted update
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the wallet was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last wallet update
}

// AvailableBalance returns balance minus the pending balance.
func (w *Wallet) AvailableBalance() decimal.Decimal {
	return w.Balance.Sub(w.PendingBalance)
}

// IsActive reports whether the wallet accepts balance mutations.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// WalletView is the display projection of a wallet.
type WalletView struct {
	UserID           int64           `json:"user_id"`
	Balance          decimal.Decimal `json:"balance"`
	PendingBalance   decimal.Decimal `json:"pending_balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Status           string          `json:"status"`
}

// NewWalletView builds the display projection of w.
func NewWalletView(w *Wallet) WalletView {
	return WalletView{
		UserID:           w.UserID,
		Balance:          w.Balance,
		PendingBalance:   w.PendingBalance,
		AvailableBalance: w.AvailableBalance(),
		Status:           w.Status.String(),
	}
}
