package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/models"
)

//go:generate mockgen -source=reconciliation.go -destination=reconciliation_mock_test.go -package=handlers

// Reconciler runs one reconciliation pass.
type Reconciler interface {
	Run(ctx context.Context) (*models.ReconciliationReport, error)
}

// NewReconcileHandler returns an HTTP handler that runs a reconciliation pass on demand.
// @Summary Run reconciliation
// @Tags admin
// @Produce json
// @Success 200 {object} models.ReconciliationReport
// @Router /admin/reconciliation [post]
// @Security BearerAuth
func NewReconcileHandler(svc Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Run(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
