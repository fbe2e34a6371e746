package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/services"
)

//go:generate mockgen -source=response.go -destination=response_mock_test.go -package=handlers

// Tokener extracts the bearer token that the services resolve into a user id.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: deposit request not found
	Error string `json:"error"`
}

const (
	busyMessage       = "system busy, retry later"
	retryAfterSeconds = "1"
)

var errInvalidBody = errors.New("invalid request body")

// errorStatus maps a service error onto the HTTP status and the message shown to the client.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, jwt.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, services.ErrForbidden.Error()
	case errors.Is(err, services.ErrDepositRequestNotFound):
		return http.StatusNotFound, services.ErrDepositRequestNotFound.Error()
	case errors.Is(err, services.ErrWalletNotFound):
		return http.StatusNotFound, services.ErrWalletNotFound.Error()
	case errors.Is(err, services.ErrStateConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrInvalidDepositAmount),
		errors.Is(err, services.ErrInvalidTransactionCode),
		errors.Is(err, services.ErrInvalidUserID),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrLockAcquisitionFailed):
		return http.StatusServiceUnavailable, busyMessage
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	log := logger.FromContext(r.Context())
	switch {
	case status == http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", retryAfterSeconds)
		log.Warnw("wallet owner lock busy", "uri", r.RequestURI, "retry_after", retryAfterSeconds, "error", err)
	case status >= http.StatusInternalServerError:
		log.Errorw("request failed", "uri", r.RequestURI, "status", status, "error", err)
	default:
		log.Warnw("request rejected", "uri", r.RequestURI, "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// idParam parses the {id} path parameter.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errInvalidBody, chi.URLParam(r, "id"))
	}
	return id, nil
}
