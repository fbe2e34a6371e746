package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=deposit.go -destination=deposit_mock_test.go -package=handlers

// DepositCreator creates deposit requests on behalf of a principal.
type DepositCreator interface {
	Create(ctx context.Context, principal string, amount decimal.Decimal, transactionCode string) (*models.DepositRequest, error)
}

// DepositCanceller cancels the principal's own pending request.
type DepositCanceller interface {
	Cancel(ctx context.Context, principal string, id int64) (*models.DepositRequest, error)
}

// CreateDepositRequest represents the JSON body for a deposit request
// swagger:model CreateDepositRequest
type CreateDepositRequest struct {
	// Amount to deposit, at most two decimal places
	// required: true
	// default: 50000.00
	Amount decimal.Decimal `json:"amount"`

	// Code of the bank transfer
	// required: true
	TransactionCode string `json:"transaction_code"`
}

// DepositResponse represents a deposit request
// swagger:model DepositResponse
type DepositResponse struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	Amount            decimal.Decimal `json:"amount"`
	TransactionCode   string          `json:"transaction_code"`
	TransferReference string          `json:"transfer_reference"`
	Status            string          `json:"status"`
	AdminNote         string          `json:"admin_note,omitempty"`
	RejectReason      string          `json:"reject_reason,omitempty"`
	ProcessedBy       *int64          `json:"processed_by,omitempty"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func newDepositResponse(req *models.DepositRequest) DepositResponse {
	return DepositResponse{
		ID:                req.ID,
		UserID:            req.UserID,
		Amount:            req.Amount,
		TransactionCode:   req.TransactionCode,
		TransferReference: req.TransferReference,
		Status:            req.Status.String(),
		AdminNote:         req.AdminNote,
		RejectReason:      req.RejectReason,
		ProcessedBy:       req.ProcessedBy,
		ProcessedAt:       req.ProcessedAt,
		CreatedAt:         req.CreatedAt,
	}
}

// NewCreateDepositHandler returns an HTTP handler that opens a pending deposit request.
// @Summary Create deposit request
// @Tags deposits
// @Accept json
// @Produce json
// @Param request body handlers.CreateDepositRequest true "Deposit request"
// @Success 201 {object} handlers.DepositResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or transaction code"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Pending request exists or wallet not active"
// @Failure 503 {object} handlers.ErrorResponse "System busy"
// @Router /deposits [post]
// @Security BearerAuth
func NewCreateDepositHandler(svc DepositCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var body CreateDepositRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", errInvalidBody, err))
			return
		}

		req, err := svc.Create(ctx, token, body.Amount, body.TransactionCode)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newDepositResponse(req))
	}
}

// NewCancelDepositHandler returns an HTTP handler that cancels the caller's pending request.
// @Summary Cancel deposit request
// @Tags deposits
// @Produce json
// @Param id path int true "Deposit request id"
// @Success 200 {object} handlers.DepositResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Not pending"
// @Router /deposits/{id}/cancel [post]
// @Security BearerAuth
func NewCancelDepositHandler(svc DepositCanceller, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		id, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		req, err := svc.Cancel(ctx, token, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newDepositResponse(req))
	}
}
