package eval

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInvalidRetryPolicy is returned by RetryPolicy.Validate when the policy's
// fields are inconsistent.
var ErrInvalidRetryPolicy = errors.New("eval: invalid retry policy")

// RetryPolicy configures exponential backoff with jitter for evaluator calls
// that hit a chat-completion provider over the network, where transient
// failures (rate limits, timeouts, 5xx) are common and retrying is the
// correct default, unlike client-supplied Operators/Generators which run
// in-process and are never retried by the engine.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts including the first.
	// Must be >= 1; 1 means no retries.
	MaxAttempts int

	// BaseDelay is the base exponential-backoff delay.
	BaseDelay time.Duration

	// MaxDelay caps the computed delay.
	MaxDelay time.Duration

	// Retryable decides whether an error should be retried. If nil, no
	// error is retried regardless of MaxAttempts.
	Retryable func(error) bool
}

// Validate reports whether the policy's fields are internally consistent.
func (rp *RetryPolicy) Validate() error {
	if rp.MaxAttempts < 1 {
		return ErrInvalidRetryPolicy
	}
	if rp.MaxDelay > 0 && rp.BaseDelay > rp.MaxDelay {
		return ErrInvalidRetryPolicy
	}
	return nil
}

// backoff computes the delay before retry attempt (0-indexed), following
// delay = min(base*2^attempt, maxDelay) + jitter(0, base).
func backoff(attempt int, base, maxDelay time.Duration, rng *rand.Rand) time.Duration {
	if base <= 0 {
		return 0
	}
	delay := base * (1 << attempt)
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	jitter := time.Duration(rng.Int63n(int64(base)))
	return delay + jitter
}

// call runs fn, retrying per the policy until it succeeds, attempts are
// exhausted, or the error is not retryable. rng drives jitter; pass a
// per-evaluator *rand.Rand so callers don't share one across goroutines.
func (rp *RetryPolicy) call(rng *rand.Rand, fn func() error) error {
	var err error
	for attempt := 0; attempt < rp.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if rp.Retryable == nil || !rp.Retryable(err) {
			return err
		}
		if attempt < rp.MaxAttempts-1 {
			time.Sleep(backoff(attempt, rp.BaseDelay, rp.MaxDelay, rng))
		}
	}
	return err
}
