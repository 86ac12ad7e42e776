package middleware

import (
	"context"
	"net/http"
	"time"
)

// DefaultRequestTimeout bounds every request. The audit path can page
// through a week of channel history, so this is generous; the webhook
// path answers in milliseconds.
const DefaultRequestTimeout = 30 * time.Second

// Timeout enforces a deadline on request handlers. The handler's
// context is cancelled and the client gets a 503 when it elapses.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		timedOut := http.TimeoutHandler(next, timeout, "Request Timeout")
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			timedOut.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
