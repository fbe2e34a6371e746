package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock_test.go -package=handlers

// WalletGetter returns the balance view of the principal's wallet.
type WalletGetter interface {
	GetWallet(ctx context.Context, principal string) (*models.WalletView, error)
}

// WalletOpener opens a wallet for a user.
type WalletOpener interface {
	CreateWallet(ctx context.Context, userID int64) (*models.Wallet, error)
}

// CreateWalletRequest represents the JSON body for opening a wallet
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Owner of the new wallet
	// required: true
	UserID int64 `json:"user_id"`
}

// NewGetWalletHandler returns an HTTP handler that shows the caller's balances.
// @Summary Get wallet
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WalletView
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "No wallet"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		view, err := svc.GetWallet(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

// NewCreateWalletHandler returns an HTTP handler that opens an empty wallet for a user.
// @Summary Open wallet
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Owner"
// @Success 201 {object} models.WalletView
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 409 {object} handlers.ErrorResponse "Wallet exists"
// @Router /admin/wallets [post]
// @Security BearerAuth
func NewCreateWalletHandler(svc WalletOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, r, fmt.Errorf("%w: %v", errInvalidBody, err))
			return
		}

		wallet, err := svc.CreateWallet(r.Context(), body.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewWalletView(wallet))
	}
}
