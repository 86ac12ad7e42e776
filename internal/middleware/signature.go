package middleware

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	logpkg "github.com/bensmidt/switchlog/internal/logger"
	"github.com/bensmidt/switchlog/internal/slack"
)

// SlackSignature verifies Slack's request signature on every inbound
// event delivery. The body must be read raw for the HMAC, so it is
// buffered and restored for downstream handlers.
func SlackSignature(verifier *slack.SignatureVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := verifier.Verify(r.Header, body); err != nil {
				logger.Warn("rejected_unsigned_request",
					zap.String("path", logpkg.SanitizePath(r.URL.Path)),
					zap.String("reason", logpkg.SanitizeError(err)),
				)
				http.Error(w, "Invalid request signature", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
