package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

//go:generate mockgen -source=approval.go -destination=approval_mock_test.go -package=handlers

// DepositApprover approves pending deposit requests.
type DepositApprover interface {
	Approve(ctx context.Context, principal string, requestID int64) (*models.ApprovalResult, error)
}

// DepositRejecter rejects pending deposit requests.
type DepositRejecter interface {
	Reject(ctx context.Context, principal string, id int64, reason string) (*models.DepositRequest, error)
}

// RejectDepositRequest represents the JSON body of a rejection
// swagger:model RejectDepositRequest
type RejectDepositRequest struct {
	// Reason shown to the user
	// default: transfer not received
	Reason string `json:"reason"`
}

// NewApproveDepositHandler returns an HTTP handler that approves a pending deposit request.
// @Summary Approve deposit request
// @Tags admin
// @Produce json
// @Param id path int true "Deposit request id"
// @Success 200 {object} models.ApprovalResult
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Already processed or wallet not active"
// @Failure 503 {object} handlers.ErrorResponse "System busy"
// @Router /admin/deposits/{id}/approve [post]
// @Security BearerAuth
func NewApproveDepositHandler(svc DepositApprover, tokener Tokener) http.HandlerFunc {
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

		result, err := svc.Approve(ctx, token, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// NewRejectDepositHandler returns an HTTP handler that rejects a pending deposit request.
// An empty body rejects without a reason.
// @Summary Reject deposit request
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Deposit request id"
// @Param request body handlers.RejectDepositRequest false "Rejection"
// @Success 200 {object} handlers.DepositResponse
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 409 {object} handlers.ErrorResponse "Already processed"
// @Router /admin/deposits/{id}/reject [post]
// @Security BearerAuth
func NewRejectDepositHandler(svc DepositRejecter, tokener Tokener) http.HandlerFunc {
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

		var body RejectDepositRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, fmt.Errorf("%w: %v", errInvalidBody, err))
			return
		}

		req, err := svc.Reject(ctx, token, id, body.Reason)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newDepositResponse(req))
	}
}
