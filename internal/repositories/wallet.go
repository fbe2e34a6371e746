package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

const walletColumns = `id, user_id, balance, pending_balance, status, version, created_at, updated_at`

// WalletRepository handles wallet reads and writes
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetByUserID loads the wallet owned by userID. Returns sql.ErrNoRows if there is none.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID int64) (*models.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	var wallet models.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID)

	logQuery(query, []any{userID}, wallet.ID, err)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// List returns every wallet ordered by id.
func (r *WalletRepository) List(ctx context.Context) ([]models.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM wallets ORDER BY id`

	var wallets []models.Wallet
	err := r.db.SelectContext(ctx, &wallets, query)

	logQuery(query, nil, len(wallets), err)

	return wallets, err
}

// Create inserts a wallet and fills its id and timestamps.
// Returns ErrAlreadyExists if the user already owns a wallet.
func (r *WalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	const query = `
		INSERT INTO wallets (user_id, balance, pending_balance, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	args := []any{wallet.UserID, wallet.Balance, wallet.PendingBalance, wallet.Status, wallet.Version}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&wallet.ID, &wallet.CreatedAt, &wallet.UpdatedAt)

	logQuery(query, args, wallet.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlreadyExists
	}
	return err
}

// Save persists balances and status of wallet using its version as a compare-and-swap guard.
// On success wallet.Version is bumped; if the stored version differs ErrConcurrentModification is returned.
func (r *WalletRepository) Save(ctx context.Context, wallet *models.Wallet) error {
	const query = `
		UPDATE wallets
		SET balance = $1, pending_balance = $2, status = $3, version = version + 1, updated_at = NOW()
		WHERE id = $4 AND version = $5
		RETURNING version, updated_at
	`
	args := []any{wallet.Balance, wallet.PendingBalance, wallet.Status, wallet.ID, wallet.Version}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&wallet.Version, &wallet.UpdatedAt)

	logQuery(query, args, wallet.Version, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrConcurrentModification
	}
	return err
}
