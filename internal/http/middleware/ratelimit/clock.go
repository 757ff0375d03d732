package ratelimit

import "time"

// Clock lets tests drive bucket refill and eviction.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
