package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

//go:generate mockgen -source=lock.go -destination=lock_mock_test.go -package=handlers

// LockInspector checks and breaks wallet owner locks.
type LockInspector interface {
	IsHeld(ctx context.Context, key string) bool
	ForceRelease(ctx context.Context, key string) bool
}

// NewGetLockHandler returns an HTTP handler reporting whether the owner lock of user {id} is held.
// The answer may be stale by the time it is returned.
// @Summary Inspect wallet owner lock
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.LockView
// @Failure 400 {object} ErrorResponse
// @Router /admin/locks/{id} [get]
// @Security BearerAuth
func NewGetLockHandler(svc LockInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		key := services.WalletOwnerLockKey(userID)
		writeJSON(w, http.StatusOK, models.LockView{
			UserID: userID,
			Key:    key,
			Held:   svc.IsHeld(r.Context(), key),
		})
	}
}

// NewForceReleaseLockHandler returns an HTTP handler deleting the owner lock of user {id} whoever holds it.
// @Summary Force release wallet owner lock
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.LockView
// @Failure 400 {object} ErrorResponse
// @Router /admin/locks/{id} [delete]
// @Security BearerAuth
func NewForceReleaseLockHandler(svc LockInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := idParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		key := services.WalletOwnerLockKey(userID)
		released := svc.ForceRelease(r.Context(), key)
		logger.FromContext(r.Context()).Warnw("operator forced lock release",
			"key", key,
			"released", released,
		)

		writeJSON(w, http.StatusOK, models.LockView{
			UserID:   userID,
			Key:      key,
			Held:     !released && svc.IsHeld(r.Context(), key),
			Released: released,
		})
	}
}
