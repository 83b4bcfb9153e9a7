package ratelimit

import "time"

// Clock abstracts time for the limiter; tests drive it manually.
type Clock interface {
	Now() time.Time
}

// RealClock reads wall time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
