package ratelimit

// NopLimiter admits every client. It is wired when RATE_LIMIT_ENABLED is off.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a Limiter that never rejects.
func NewNopLimiter() Limiter { return NopLimiter{} }
