package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

const depositColumns = `id, user_id, amount, transaction_code, transfer_reference, status,
	admin_note, reject_reason, processed_by, processed_at, created_at, updated_at`

// DepositRequestRepository handles deposit request reads and writes
type DepositRequestRepository struct {
	db *sqlx.DB
}

func NewDepositRequestRepository(db *sqlx.DB) *DepositRequestRepository {
	return &DepositRequestRepository{db: db}
}

// GetByID loads a deposit request. Returns sql.ErrNoRows if it does not exist.
func (r *DepositRequestRepository) GetByID(ctx context.Context, id int64) (*models.DepositRequest, error) {
	const query = `SELECT ` + depositColumns + ` FROM deposit_requests WHERE id = $1`

	var req models.DepositRequest
	err := r.db.GetContext(ctx, &req, query, id)

	logQuery(query, []any{id}, req.Status, err)

	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetUserIDByID returns the owner of a deposit request. Returns sql.ErrNoRows if it does not exist.
func (r *DepositRequestRepository) GetUserIDByID(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT user_id FROM deposit_requests WHERE id = $1`

	var userID int64
	err := r.db.GetContext(ctx, &userID, query, id)

	logQuery(query, []any{id}, userID, err)

	return userID, err
}

// ExistsPendingByUserID reports whether userID has a PENDING deposit request.
func (r *DepositRequestRepository) ExistsPendingByUserID(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM deposit_requests WHERE user_id = $1 AND status = $2)`
	args := []any{userID, models.DepositStatusPending}

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

// Create inserts a deposit request and fills its id and timestamps.
func (r *DepositRequestRepository) Create(ctx context.Context, req *models.DepositRequest) error {
	const query = `
		INSERT INTO deposit_requests (user_id, amount, transaction_code, transfer_reference, status,
			admin_note, reject_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{req.UserID, req.Amount, req.TransactionCode, req.TransferReference, req.Status,
		req.AdminNote, req.RejectReason}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	logQuery(query, args, req.ID, err)

	return err
}

// Save persists the mutable fields of a deposit request. Returns sql.ErrNoRows if it does not exist.
func (r *DepositRequestRepository) Save(ctx context.Context, req *models.DepositRequest) error {
	const query = `
		UPDATE deposit_requests
		SET status = $1, admin_note = $2, reject_reason = $3, processed_by = $4, processed_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	args := []any{req.Status, req.AdminNote, req.RejectReason, req.ProcessedBy, req.ProcessedAt, req.ID}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&req.UpdatedAt)

	logQuery(query, args, req.Status, err)

	return err
}

// ListApprovedWithoutLedgerEntry returns ids of APPROVED requests that no DEPOSIT ledger entry references.
func (r *DepositRequestRepository) ListApprovedWithoutLedgerEntry(ctx context.Context) ([]int64, error) {
	const query = `
		SELECT dr.id
		FROM deposit_requests dr
		LEFT JOIN wallet_transactions wt
			ON wt.reference_id = dr.id AND wt.transaction_type = $1
		WHERE dr.status = $2 AND wt.id IS NULL
		ORDER BY dr.id
	`
	args := []any{models.TransactionTypeDeposit, models.DepositStatusApproved}

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, args...)

	logQuery(query, args, ids, err)

	return ids, err
}
