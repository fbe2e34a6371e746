package models

import "github.com/shopspring/decimal"

// WalletMismatch describes a wallet whose ledger does not explain its balance.
type WalletMismatch struct {
	WalletID           int64           `json:"wallet_id"`
	StoredBalance      decimal.Decimal `json:"stored_balance"`
	CalculatedBalance  decimal.Decimal `json:"calculated_balance"`
	BrokenTransactions []int64         `json:"broken_transactions,omitempty"` // Entries failing arithmetic or chain checks
}

// ReconciliationReport is the result of one reconciliation pass.
type ReconciliationReport struct {
	OrphanedApprovals []int64          `json:"orphaned_approvals"` // APPROVED deposit ids with no DEPOSIT ledger entry
	Mismatches        []WalletMismatch `json:"mismatches"`
	WalletsChecked    int              `json:"wallets_checked"`
	WalletsSkipped    int              `json:"wallets_skipped"` // Wallets whose lock could not be taken
}

// Clean reports whether the pass found nothing to investigate.
func (r *ReconciliationReport) Clean() bool {
	return len(r.OrphanedApprovals) == 0 && len(r.Mismatches) == 0
}
