package classifier

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// RetryPolicy bounds how classification attempts are repeated. Loading
// waits are budgeted separately from retries: a cold model is a different
// condition from a failing one and should not burn the attempt budget.
type RetryPolicy struct {
	MaxAttempts     int
	MaxLoadingWaits int
	LoadingWait     time.Duration
	BackoffBase     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		MaxLoadingWaits: 5,
		LoadingWait:     3 * time.Second,
		BackoffBase:     time.Second,
	}
}

// Backoff returns the delay before the given attempt, doubling from the
// base: 1s before attempt 2, 2s before attempt 3.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	d := p.BackoffBase
	for i := 2; i < attempt; i++ {
		d *= 2
	}
	return d
}

// Retryable reports whether an error is a transient condition worth
// another attempt: transport failures, 429 and 5xx. Every other client
// error (bad request, bad credentials) is terminal.
func (p RetryPolicy) Retryable(err error) bool {
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var he *httpError
	if errors.As(err, &he) {
		switch he.status {
		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
