package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 64

// LoggingMiddleware tags every request with an id and writes one access line when it completes.
//
// The id comes from an incoming X-Request-ID header when it looks sane, otherwise a UUID is
// generated. It is echoed in the response and stored in the request context, so
// logger.FromContext tags handler and service lines with it.
//
// Responses carrying Retry-After (the owner lock was busy) are logged at warn with the advised
// delay, 5xx at error, everything else at info.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestID(r)
			w.Header().Set(RequestIDHeader, reqID)
			r = r.WithContext(logger.WithRequestID(r.Context(), reqID))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			fields := []any{
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"route", routePattern(r),
				"status", rec.status,
				"bytes", rec.bytes,
				"duration", time.Since(start),
			}

			switch retryAfter := rec.Header().Get("Retry-After"); {
			case retryAfter != "":
				log.Warnw("request deferred", append(fields, "retry_after", retryAfter)...)
			case rec.status >= http.StatusInternalServerError:
				log.Errorw("request failed", fields...)
			default:
				log.Infow("request served", fields...)
			}
		})
	}
}

// requestID reuses the caller's id when present so one id follows a request across services.
func requestID(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLen {
		return uuid.New().String()
	}
	for _, c := range id {
		if c < '!' || c > '~' {
			return uuid.New().String()
		}
	}
	return id
}

// routePattern is the matched chi pattern, e.g. /admin/deposits/{id}/approve.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}
