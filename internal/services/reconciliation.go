package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=reconciliation.go -destination=reconciliation_mock_test.go -package=services

// OrphanFinder finds approvals that never reached the ledger.
type OrphanFinder interface {
	ListApprovedWithoutLedgerEntry(ctx context.Context) ([]int64, error)
}

// WalletLister enumerates wallets.
type WalletLister interface {
	List(ctx context.Context) ([]models.Wallet, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Wallet, error)
}

// TransactionReader reads a wallet's ledger.
type TransactionReader interface {
	ListByWalletID(ctx context.Context, walletID int64) ([]models.WalletTransaction, error) // Insertion order
}

// ReconciliationService checks that balances are explained by the ledger and that every
// approval produced a ledger entry.
type ReconciliationService struct {
	orphans OrphanFinder
	wallets WalletLister
	txs     TransactionReader
	locker  Locker
	policy  LockPolicy
	workers int
}

// NewReconciliationService creates a new ReconciliationService checking up to workers wallets at once.
func NewReconciliationService(
	orphans OrphanFinder,
	wallets WalletLister,
	txs TransactionReader,
	locker Locker,
	policy LockPolicy,
	workers int,
) *ReconciliationService {
	if workers <= 0 {
		workers = 1
	}
	return &ReconciliationService{
		orphans: orphans,
		wallets: wallets,
		txs:     txs,
		locker:  locker,
		policy:  policy,
		workers: workers,
	}
}

// Run performs one reconciliation pass. It only reads; findings are logged and returned.
// Each wallet is checked under its owner's lock so that an in-flight mutation is not
// reported as a mismatch. Wallets whose lock cannot be taken are counted as skipped.
func (s *ReconciliationService) Run(ctx context.Context) (*models.ReconciliationReport, error) {
	orphaned, err := s.orphans.ListApprovedWithoutLedgerEntry(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list orphaned approvals", "error", err)
		return nil, fmt.Errorf("list orphaned approvals: %w", err)
	}

	wallets, err := s.wallets.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list wallets", "error", err)
		return nil, fmt.Errorf("list wallets: %w", err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create reconciliation pool: %w", err)
	}
	defer pool.Release()

	report := &models.ReconciliationReport{
		OrphanedApprovals: orphaned,
		Mismatches:        []models.WalletMismatch{},
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	for _, w := range wallets {
		userID := w.UserID

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			mismatch, err := s.checkWallet(ctx, userID)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, ErrLockAcquisitionFailed):
				report.WalletsSkipped++
			case err != nil:
				if firstErr == nil {
					firstErr = err
				}
			default:
				report.WalletsChecked++
				if mismatch != nil {
					report.Mismatches = append(report.Mismatches, *mismatch)
				}
			}
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit wallet check: %w", submitErr)
		}
	}
	wg.Wait()

	if firstErr != nil {
		logger.FromContext(ctx).Errorw("reconciliation pass failed", "error", firstErr)
		return nil, firstErr
	}

	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].WalletID < report.Mismatches[j].WalletID
	})

	for _, id := range report.OrphanedApprovals {
		logger.FromContext(ctx).Errorw("approved deposit request has no ledger entry", "deposit_id", id)
	}
	for _, m := range report.Mismatches {
		logger.FromContext(ctx).Errorw("wallet balance not explained by ledger",
			"wallet_id", m.WalletID,
			"stored_balance", m.StoredBalance.StringFixed(2),
			"calculated_balance", m.CalculatedBalance.StringFixed(2),
			"broken_transactions", m.BrokenTransactions,
		)
	}
	logger.FromContext(ctx).Infow("reconciliation pass finished",
		"wallets_checked", report.WalletsChecked,
		"wallets_skipped", report.WalletsSkipped,
		"orphaned_approvals", len(report.OrphanedApprovals),
		"mismatches", len(report.Mismatches),
	)

	return report, nil
}

func (s *ReconciliationService) checkWallet(ctx context.Context, userID int64) (*models.WalletMismatch, error) {
	var mismatch *models.WalletMismatch
	err := s.locker.ExecuteUnderLock(ctx, WalletOwnerLockKey(userID), s.policy.TTL, s.policy.MaxWait, func(ctx context.Context) error {
		wallet, err := s.wallets.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("load wallet of user %d: %w", userID, err)
		}

		txs, err := s.txs.ListByWalletID(ctx, wallet.ID)
		if err != nil {
			return fmt.Errorf("load ledger of wallet %d: %w", wallet.ID, err)
		}

		mismatch = verifyLedger(wallet, txs)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("wallet check failed", "user_id", userID, "error", err)
	}
	return mismatch, err
}

// verifyLedger replays txs from zero, the balance every wallet is opened with. An entry is
// broken when its amount is not positive or its balances do not chain from the previous entry.
func verifyLedger(wallet *models.Wallet, txs []models.WalletTransaction) *models.WalletMismatch {
	var broken []int64
	running := decimal.Zero
	for i := range txs {
		tx := &txs[i]
		if !tx.Amount.IsPositive() ||
			!tx.BalanceBefore.Equal(running) ||
			!tx.BalanceAfter.Equal(tx.BalanceBefore.Add(tx.SignedAmount())) {
			broken = append(broken, tx.ID)
		}
		running = running.Add(tx.SignedAmount())
	}

	if len(broken) == 0 && running.Equal(wallet.Balance) {
		return nil
	}
	return &models.WalletMismatch{
		WalletID:           wallet.ID,
		StoredBalance:      wallet.Balance,
		CalculatedBalance:  running,
		BrokenTransactions: broken,
	}
}
