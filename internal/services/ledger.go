package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock_test.go -package=services

// WalletWriter persists wallet balance updates.
type WalletWriter interface {
	Save(ctx context.Context, wallet *models.Wallet) error // Fails with ErrConcurrentModification on a stale version
}

// TransactionWriter appends ledger entries.
type TransactionWriter interface {
	Save(ctx context.Context, tx *models.WalletTransaction) error // Fills tx.ID and tx.CreatedAt
}

// LedgerService applies balance mutations and records one ledger entry per mutation.
// Callers must hold the wallet owner's lock.
type LedgerService struct {
	wallets WalletWriter
	txs     TransactionWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(wallets WalletWriter, txs TransactionWriter) *LedgerService {
	return &LedgerService{wallets: wallets, txs: txs}
}

// ApplyCredit adds amount to the wallet balance and appends a CREDIT entry of txType.
// The input wallet is not modified; the updated copy is returned.
func (s *LedgerService) ApplyCredit(
	ctx context.Context,
	wallet *models.Wallet,
	amount decimal.Decimal,
	txType models.TransactionType,
	referenceID int64,
) (*models.Wallet, *models.WalletTransaction, error) {
	if wallet == nil {
		return nil, nil, fmt.Errorf("%w: wallet is required", ErrLedgerInvariantViolation)
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be positive, got %s", ErrLedgerInvariantViolation, amount)
	}
	if !amount.Equal(amount.Round(2)) {
		return nil, nil, fmt.Errorf("%w: amount %s has more than 2 decimal places", ErrLedgerInvariantViolation, amount)
	}
	if !wallet.IsActive() {
		return nil, nil, fmt.Errorf("%w: wallet %d is %s", ErrWalletNotActive, wallet.ID, wallet.Status)
	}

	updated := *wallet
	updated.Balance = wallet.Balance.Add(amount)

	if err := s.wallets.Save(ctx, &updated); err != nil {
		logger.FromContext(ctx).Errorw("failed to save wallet balance",
			"wallet_id", wallet.ID, "amount", amount, "error", err)
		return nil, nil, fmt.Errorf("save wallet %d: %w", wallet.ID, err)
	}

	tx := &models.WalletTransaction{
		WalletID:      wallet.ID,
		Type:          txType,
		Direction:     models.DirectionCredit,
		Amount:        amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  updated.Balance,
		PendingBefore: wallet.PendingBalance,
		PendingAfter:  updated.PendingBalance,
		ReferenceID:   referenceID,
	}
	if err := s.txs.Save(ctx, tx); err != nil {
		// The balance is already persisted; reconciliation reports the missing entry.
		logger.FromContext(ctx).Errorw("failed to append ledger entry after balance update",
			"wallet_id", wallet.ID, "type", txType, "reference_id", referenceID, "error", err)
		return &updated, nil, fmt.Errorf("append ledger entry for wallet %d: %w", wallet.ID, err)
	}

	logger.FromContext(ctx).Infow("ledger entry applied",
		"wallet_id", wallet.ID,
		"transaction_id", tx.ID,
		"type", txType,
		"amount", amount.StringFixed(2),
		"balance_after", updated.Balance.StringFixed(2),
	)

	return &updated, tx, nil
}
