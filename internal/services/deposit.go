package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// DepositLimits bounds the amount of a single deposit request.
type DepositLimits struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultDepositLimits returns 10,000.00 to 100,000,000.00.
func DefaultDepositLimits() DepositLimits {
	return DepositLimits{
		Min: decimal.NewFromInt(10_000),
		Max: decimal.NewFromInt(100_000_000),
	}
}

// DepositService creates deposit requests and resolves them without crediting.
// Every state change runs under the owner's wallet lock.
type DepositService struct {
	identity IdentityResolver
	deposits DepositRequestStore
	wallets  WalletReader
	locker   Locker
	limits   DepositLimits
	policy   LockPolicy
	now      func() time.Time
}

// NewDepositService creates a new DepositService.
func NewDepositService(
	identity IdentityResolver,
	deposits DepositRequestStore,
	wallets WalletReader,
	locker Locker,
	limits DepositLimits,
	policy LockPolicy,
) *DepositService {
	return &DepositService{
		identity: identity,
		deposits: deposits,
		wallets:  wallets,
		locker:   locker,
		limits:   limits,
		policy:   policy,
		now:      time.Now,
	}
}

// Create opens a PENDING deposit request for the principal's wallet.
// A user has at most one PENDING request; the check and the insert run under the owner's lock
// with a single acquisition attempt, so a concurrent Create fails fast with ErrLockBusy.
func (s *DepositService) Create(ctx context.Context, principal string, amount decimal.Decimal, transactionCode string) (*models.DepositRequest, error) {
	userID, err := s.identity.ResolveUserID(ctx, principal)
	if err != nil {
		return nil, err
	}

	if err := s.validateAmount(amount); err != nil {
		return nil, err
	}
	transactionCode = strings.TrimSpace(transactionCode)
	if transactionCode == "" {
		return nil, ErrInvalidTransactionCode
	}

	if _, err := loadActiveWallet(ctx, s.wallets, userID); err != nil {
		return nil, err
	}

	var req *models.DepositRequest
	err = s.locker.ExecuteUnderLock(ctx, WalletOwnerLockKey(userID), s.policy.TTL, 0, func(ctx context.Context) error {
		exists, err := s.deposits.ExistsPendingByUserID(ctx, userID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to check pending deposit requests", "user_id", userID, "error", err)
			return fmt.Errorf("check pending deposit requests of user %d: %w", userID, err)
		}
		if exists {
			return ErrPendingDepositExists
		}

		req = &models.DepositRequest{
			UserID:            userID,
			Amount:            amount,
			TransactionCode:   transactionCode,
			TransferReference: transferReference(userID, s.now()),
			Status:            models.DepositStatusPending,
		}
		if err := s.deposits.Create(ctx, req); err != nil {
			logger.FromContext(ctx).Errorw("failed to create deposit request", "user_id", userID, "amount", amount, "error", err)
			return fmt.Errorf("create deposit request: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("deposit request not created", "user_id", userID, "amount", amount, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("deposit request created",
		"deposit_id", req.ID,
		"user_id", userID,
		"amount", amount.StringFixed(2),
		"transfer_reference", req.TransferReference,
	)
	return req, nil
}

// Reject moves a PENDING request to REJECTED on behalf of the principal. No balance changes.
func (s *DepositService) Reject(ctx context.Context, principal string, id int64, reason string) (*models.DepositRequest, error) {
	adminID, err := s.identity.ResolveUserID(ctx, principal)
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, id, func(req *models.DepositRequest) error {
		req.Resolve(models.DepositStatusRejected, adminID, s.now())
		req.RejectReason = strings.TrimSpace(reason)
		return nil
	})
}

// Cancel moves the principal's own PENDING request to CANCELLED.
func (s *DepositService) Cancel(ctx context.Context, principal string, id int64) (*models.DepositRequest, error) {
	userID, err := s.identity.ResolveUserID(ctx, principal)
	if err != nil {
		return nil, err
	}

	return s.resolve(ctx, id, func(req *models.DepositRequest) error {
		if req.UserID != userID {
			return fmt.Errorf("%w: deposit request %d belongs to another user", ErrForbidden, req.ID)
		}
		req.Resolve(models.DepositStatusCancelled, userID, s.now())
		req.RejectReason = "cancelled by user"
		return nil
	})
}

// resolve applies transition to a PENDING request under its owner's lock and saves it.
func (s *DepositService) resolve(ctx context.Context, id int64, transition func(req *models.DepositRequest) error) (*models.DepositRequest, error) {
	userID, err := s.deposits.GetUserIDByID(ctx, id)
	if err != nil {
		return nil, ownerLookupError(ctx, id, err)
	}

	var req *models.DepositRequest
	err = s.locker.ExecuteUnderLock(ctx, WalletOwnerLockKey(userID), s.policy.TTL, s.policy.MaxWait, func(ctx context.Context) error {
		pending, err := loadPendingDeposit(ctx, s.deposits, id)
		if err != nil {
			return err
		}
		if err := transition(pending); err != nil {
			return err
		}
		if err := s.deposits.Save(ctx, pending); err != nil {
			logger.FromContext(ctx).Errorw("failed to save deposit request", "deposit_id", id, "error", err)
			return fmt.Errorf("save deposit request %d: %w", id, err)
		}
		req = pending
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warnw("deposit request not resolved", "deposit_id", id, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("deposit request resolved", "deposit_id", id, "status", req.Status)
	return req, nil
}

func (s *DepositService) validateAmount(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: at most 2 decimal places allowed", ErrInvalidDepositAmount)
	}
	if amount.LessThan(s.limits.Min) {
		return fmt.Errorf("%w: minimum is %s", ErrInvalidDepositAmount, s.limits.Min.StringFixed(2))
	}
	if amount.GreaterThan(s.limits.Max) {
		return fmt.Errorf("%w: maximum is %s", ErrInvalidDepositAmount, s.limits.Max.StringFixed(2))
	}
	return nil
}

// transferReference is the code the user puts on the bank transfer, e.g. DEP-42-20261015093000.
func transferReference(userID int64, at time.Time) string {
	return fmt.Sprintf("DEP-%d-%s", userID, at.UTC().Format("20060102150405"))
}
