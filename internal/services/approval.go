package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=approval.go -destination=approval_mock_test.go -package=services

// IdentityResolver maps an authenticated principal to a user id.
type IdentityResolver interface {
	ResolveUserID(ctx context.Context, principal string) (int64, error)
}

// DepositRequestStore reads and writes deposit requests.
type DepositRequestStore interface {
	GetByID(ctx context.Context, id int64) (*models.DepositRequest, error) // sql.ErrNoRows if missing
	GetUserIDByID(ctx context.Context, id int64) (int64, error)            // sql.ErrNoRows if missing
	ExistsPendingByUserID(ctx context.Context, userID int64) (bool, error) // Whether a PENDING request exists
	Create(ctx context.Context, req *models.DepositRequest) error          // Fills id and timestamps
	Save(ctx context.Context, req *models.DepositRequest) error            // Persists status and resolution fields
}

// WalletReader loads wallets.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Wallet, error) // sql.ErrNoRows if missing
}

// Locker runs actions under an exclusive distributed lock.
type Locker interface {
	ExecuteUnderLock(ctx context.Context, key string, ttl, maxWait time.Duration, action func(ctx context.Context) error) error
}

// CreditApplier credits wallets through the ledger.
type CreditApplier interface {
	ApplyCredit(
		ctx context.Context,
		wallet *models.Wallet,
		amount decimal.Decimal,
		txType models.TransactionType,
		referenceID int64,
	) (*models.Wallet, *models.WalletTransaction, error)
}

// LedgerEventPublisher announces applied ledger entries. Publishing never fails the caller.
type LedgerEventPublisher interface {
	Publish(ctx context.Context, event models.LedgerEvent)
}

// LockPolicy is the lease TTL and wait used for wallet owner locks.
type LockPolicy struct {
	TTL     time.Duration
	MaxWait time.Duration
}

// DefaultLockPolicy returns a 10s TTL with up to 10s of waiting.
func DefaultLockPolicy() LockPolicy {
	return LockPolicy{TTL: 10 * time.Second, MaxWait: 10 * time.Second}
}

// WalletOwnerLockKey is the lock serializing every state change of userID's wallet and deposit requests.
func WalletOwnerLockKey(userID int64) string {
	return fmt.Sprintf("wallet-owner:%d", userID)
}

// ApprovalService approves pending deposit requests and credits the owner's wallet.
type ApprovalService struct {
	identity IdentityResolver
	deposits DepositRequestStore
	wallets  WalletReader
	locker   Locker
	ledger   CreditApplier
	events   LedgerEventPublisher
	policy   LockPolicy
	now      func() time.Time
}

// NewApprovalService creates a new ApprovalService. events may be nil.
func NewApprovalService(
	identity IdentityResolver,
	deposits DepositRequestStore,
	wallets WalletReader,
	locker Locker,
	ledger CreditApplier,
	events LedgerEventPublisher,
	policy LockPolicy,
) *ApprovalService {
	return &ApprovalService{
		identity: identity,
		deposits: deposits,
		wallets:  wallets,
		locker:   locker,
		ledger:   ledger,
		events:   events,
		policy:   policy,
		now:      time.Now,
	}
}

// Approve marks a PENDING deposit request APPROVED and credits its amount to the owner's wallet.
//
// The request is re-read under the owner's lock, so of several concurrent approvals exactly one
// succeeds and the rest get ErrDepositNotPending. The request is persisted before the credit and
// there is no rollback: if the credit fails the request stays APPROVED with no ledger entry,
// which the reconciliation pass reports.
func (s *ApprovalService) Approve(ctx context.Context, principal string, requestID int64) (*models.ApprovalResult, error) {
	adminID, err := s.identity.ResolveUserID(ctx, principal)
	if err != nil {
		return nil, err
	}

	userID, err := s.deposits.GetUserIDByID(ctx, requestID)
	if err != nil {
		return nil, ownerLookupError(ctx, requestID, err)
	}

	var (
		result *models.ApprovalResult
		event  models.LedgerEvent
	)
	err = s.locker.ExecuteUnderLock(ctx, WalletOwnerLockKey(userID), s.policy.TTL, s.policy.MaxWait, func(ctx context.Context) error {
		req, err := loadPendingDeposit(ctx, s.deposits, requestID)
		if err != nil {
			return err
		}

		wallet, err := loadActiveWallet(ctx, s.wallets, req.UserID)
		if err != nil {
			return err
		}

		req.Resolve(models.DepositStatusApproved, adminID, s.now())
		req.AdminNote = fmt.Sprintf("approved deposit of %s", req.Amount.StringFixed(2))
		if err := s.deposits.Save(ctx, req); err != nil {
			logger.FromContext(ctx).Errorw("failed to save approved deposit request", "deposit_id", req.ID, "error", err)
			return fmt.Errorf("save deposit request %d: %w", req.ID, err)
		}

		updated, tx, err := s.ledger.ApplyCredit(ctx, wallet, req.Amount, models.TransactionTypeDeposit, req.ID)
		if err != nil {
			logger.FromContext(ctx).Errorw("deposit request approved but wallet credit failed",
				"deposit_id", req.ID, "wallet_id", wallet.ID, "amount", req.Amount, "error", err)
			return fmt.Errorf("credit wallet %d for deposit request %d: %w", wallet.ID, req.ID, err)
		}

		result = &models.ApprovalResult{
			DepositID:     req.ID,
			Amount:        req.Amount,
			Status:        req.Status.String(),
			WalletID:      updated.ID,
			TransactionID: tx.ID,
			BalanceAfter:  updated.Balance,
			ProcessedBy:   adminID,
			ProcessedAt:   *req.ProcessedAt,
		}
		event = models.NewLedgerEvent(updated.UserID, tx)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("deposit approval failed", "deposit_id", requestID, "admin_id", adminID, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("deposit request approved",
		"deposit_id", result.DepositID,
		"admin_id", adminID,
		"amount", result.Amount.StringFixed(2),
		"balance_after", result.BalanceAfter.StringFixed(2),
	)

	if s.events != nil {
		s.events.Publish(ctx, event)
	}

	return result, nil
}

// ownerLookupError maps a failed lock-free owner lookup of deposit request id.
func ownerLookupError(ctx context.Context, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Warnw("deposit request not found", "deposit_id", id)
		return ErrDepositRequestNotFound
	}
	logger.FromContext(ctx).Errorw("failed to look up deposit request owner", "deposit_id", id, "error", err)
	return fmt.Errorf("look up deposit request %d: %w", id, err)
}

// loadPendingDeposit reads a deposit request and checks it is still PENDING.
func loadPendingDeposit(ctx context.Context, store DepositRequestStore, id int64) (*models.DepositRequest, error) {
	req, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDepositRequestNotFound
		}
		logger.FromContext(ctx).Errorw("failed to load deposit request", "deposit_id", id, "error", err)
		return nil, fmt.Errorf("load deposit request %d: %w", id, err)
	}
	if !req.IsPending() {
		return nil, fmt.Errorf("%w: deposit request %d is %s", ErrDepositNotPending, id, req.Status)
	}
	return req, nil
}

// loadActiveWallet reads the wallet of userID and checks it is ACTIVE.
func loadActiveWallet(ctx context.Context, wallets WalletReader, userID int64) (*models.Wallet, error) {
	wallet, err := wallets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		logger.FromContext(ctx).Errorw("failed to load wallet", "user_id", userID, "error", err)
		return nil, fmt.Errorf("load wallet of user %d: %w", userID, err)
	}
	if !wallet.IsActive() {
		return nil, fmt.Errorf("%w: wallet %d is %s", ErrWalletNotActive, wallet.ID, wallet.Status)
	}
	return wallet, nil
}
