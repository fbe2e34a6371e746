package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

// WalletTransactionRepository appends and reads ledger entries. There is no update or delete.
type WalletTransactionRepository struct {
	db *sqlx.DB
}

func NewWalletTransactionRepository(db *sqlx.DB) *WalletTransactionRepository {
	return &WalletTransactionRepository{db: db}
}

// Save inserts a ledger entry and fills its id and creation time.
func (r *WalletTransactionRepository) Save(ctx context.Context, tx *models.WalletTransaction) error {
	const query = `
		INSERT INTO wallet_transactions (wallet_id, transaction_type, direction, amount,
			balance_before, balance_after, pending_before, pending_after, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`
	args := []any{tx.WalletID, tx.Type, tx.Direction, tx.Amount,
		tx.BalanceBefore, tx.BalanceAfter, tx.PendingBefore, tx.PendingAfter, tx.ReferenceID}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&tx.ID, &tx.CreatedAt)

	logQuery(query, args, tx.ID, err)

	return err
}

// ListByWalletID returns the ledger of a wallet in insertion order.
func (r *WalletTransactionRepository) ListByWalletID(ctx context.Context, walletID int64) ([]models.WalletTransaction, error) {
	const query = `
		SELECT id, wallet_id, transaction_type, direction, amount, balance_before, balance_after,
			pending_before, pending_after, reference_id, created_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY id
	`

	var txs []models.WalletTransaction
	err := r.db.SelectContext(ctx, &txs, query, walletID)

	logQuery(query, []any{walletID}, len(txs), err)

	return txs, err
}
