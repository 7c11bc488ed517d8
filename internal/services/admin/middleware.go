package admin

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/louisbranch/useradmin/internal/platform/requestctx"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxRequestIDLength bounds inbound correlation ids; longer ones are replaced.
const maxRequestIDLength = 128

// withRequestID tags each request with a correlation id, reusing a sane
// inbound X-Request-ID, and echoes it on the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestctx.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength || strings.ContainsAny(id, "\r\n") {
			id = uuid.NewString()
		}
		w.Header().Set(requestctx.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), id)))
	})
}

// limitRequests answers 429 once limiter is exhausted. HTMX does not swap
// error responses, so a rejected interaction leaves the screen unchanged.
// A nil limiter disables the check.
func limitRequests(next http.Handler, limiter *rate.Limiter, logger logrus.FieldLogger) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.WithFields(logrus.Fields{
				"path":       r.URL.Path,
				"request_id": requestctx.RequestIDFromContext(r.Context()),
			}).Warn("request rate limited")
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// newLimiter returns a limiter for perSecond events with burst, or nil when
// perSecond is not positive.
func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
