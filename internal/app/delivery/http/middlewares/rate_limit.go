package middlewares

import (
	"medibook-service/internal/app/services/shared/ratelimiter"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
)

// AuthRateLimit bounds the credential endpoints per client IP with the
// Redis fixed-window limiter, on top of the global httprate limiter.
func (m *Middlewares) AuthRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			clientIP = host
		}

		out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      clientIP,
			LimiterGroupName:  "auth",
			WindowDurationSec: m.InternalConfig.RateLimit.AuthWindowInSeconds,
			MaxQuota:          m.InternalConfig.RateLimit.AuthMaxAttempts,
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
