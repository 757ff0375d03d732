package ratelimit

import (
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"loadvoice-synqall/internal/logx"
)

// Middleware rejects requests of clients that ran out of tokens with 429.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	exempt  []string
}

// New creates a Middleware. Requests whose path starts with one of exempt
// bypass the limiter.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, exempt ...string) *Middleware {
	if logger == nil {
		logger = logx.Nop()
	}
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		exempt:  exempt,
	}
}

func (m *Middleware) isExempt(path string) bool {
	for _, p := range m.exempt {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.isExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if m.limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("ip", ip),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed",
					logx.String("ip", ip),
					logx.Err(err),
				)
			}
		})
	}
}

// clientIP expects RemoteAddr to be already rewritten by chi's RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
