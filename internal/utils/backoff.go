package utils

import (
	"time"
)

// Backoff retries an operation with exponentially growing delays, capped so
// a long retry run against an unreachable database does not sleep for
// minutes between attempts.
type Backoff struct {
	base       time.Duration
	cap        time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, cap: 30 * time.Second, maxRetries: maxRetries}
}

// Do calls fn with the attempt index until it succeeds or the retries run
// out, returning the last error. There is no sleep after the final attempt.
func (b Backoff) Do(fn func(i int) error) error {
	var err error
	for i := 0; i <= b.maxRetries; i++ {
		err = fn(i)
		if err == nil {
			return nil
		}
		if i < b.maxRetries {
			time.Sleep(b.delay(i))
		}
	}
	return err
}

func (b Backoff) delay(i int) time.Duration {
	d := time.Duration(1<<i) * b.base
	if d > b.cap {
		d = b.cap
	}
	return d
}
