package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/repositories"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock_test.go -package=services

// WalletCreator opens wallets.
type WalletCreator interface {
	Create(ctx context.Context, wallet *models.Wallet) error // repositories.ErrAlreadyExists if the user has one
}

// WalletService provisions wallets and serves balance views.
type WalletService struct {
	identity IdentityResolver
	reader   WalletReader
	creator  WalletCreator
}

// NewWalletService creates a new WalletService.
func NewWalletService(identity IdentityResolver, reader WalletReader, creator WalletCreator) *WalletService {
	return &WalletService{identity: identity, reader: reader, creator: creator}
}

// GetWallet returns the balance view of the principal's wallet. It does not take the lock.
func (s *WalletService) GetWallet(ctx context.Context, principal string) (*models.WalletView, error) {
	userID, err := s.identity.ResolveUserID(ctx, principal)
	if err != nil {
		return nil, err
	}

	wallet, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		logger.FromContext(ctx).Errorw("failed to get wallet", "user_id", userID, "error", err)
		return nil, fmt.Errorf("get wallet of user %d: %w", userID, err)
	}

	view := models.NewWalletView(wallet)
	return &view, nil
}

// CreateWallet opens an empty ACTIVE wallet for userID.
func (s *WalletService) CreateWallet(ctx context.Context, userID int64) (*models.Wallet, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserID, userID)
	}

	wallet := &models.Wallet{
		UserID:         userID,
		Balance:        decimal.Zero,
		PendingBalance: decimal.Zero,
		Status:         models.WalletStatusActive,
	}
	if err := s.creator.Create(ctx, wallet); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrWalletAlreadyExists
		}
		logger.FromContext(ctx).Errorw("failed to create wallet", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create wallet for user %d: %w", userID, err)
	}

	logger.FromContext(ctx).Infow("wallet created", "wallet_id", wallet.ID, "user_id", userID)
	return wallet, nil
}
