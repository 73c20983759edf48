package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"football/pkg/footballapi"
	"football/pkg/logger"
)

// RateLimiter shares the upstream request budget between concurrently running
// jobs. The API reports its budget on every response, so the limiter works on
// the last observed status instead of a local token bucket.
//
// A request may start when remaining - inFlight > 0, where remaining is the
// last reported Remaining, or Limit once ResetAt has passed. Callers that find
// no budget wait until ResetAt or until another request finishes.
//
// Until the first status arrives the limiter behaves as if Limit=1 with a
// far-future reset. This lets exactly one probe request through to learn the
// real headers. Waiters capture the wake channel while holding the lock, so a
// request finishing between the check and the wait is never missed.
//
// Upstream reports the reset as seconds from now, so responses of one window
// carry ResetAt values that differ by up to a second. Statuses whose ResetAt
// lies within sameWindow of the known one belong to the same window and only
// lower Remaining, since concurrent responses arrive out of order and the
// lower count is the fresher one. A strictly later ResetAt starts a new
// window; an earlier one is stale and ignored.
type RateLimiter struct {
	mu       sync.Mutex
	inFlight int
	last     *footballapi.RateLimitStatus

	// wake is closed and replaced by Done so every waiter captured under mu
	// re-evaluates the budget.
	wake chan struct{}
	now  func() time.Time
}

const sameWindow = time.Second

// bootstrap is the budget assumed before the first status is observed.
func (r *RateLimiter) bootstrap() footballapi.RateLimitStatus {
	return footballapi.RateLimitStatus{
		Limit:     1,
		Remaining: 1,
		ResetAt:   r.now().Add(365 * 24 * time.Hour),
	}
}

// NewRateLimiter returns a limiter that has not observed any status yet.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		wake: make(chan struct{}),
		now:  time.Now,
	}
}

// Status returns the last observed status and the number of requests in flight.
func (r *RateLimiter) Status() (footballapi.RateLimitStatus, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == nil {
		return footballapi.RateLimitStatus{}, r.inFlight
	}

	return *r.last, r.inFlight
}

// Reserve takes one request from the budget, blocking until one is available
// or ctx is done. Every successful Reserve must be paired with Done.
func (r *RateLimiter) Reserve(ctx context.Context) error {
	for {
		r.mu.Lock()

		status := r.bootstrap()
		if r.last != nil {
			status = *r.last
		}
		now := r.now()
		remaining := status.Remaining
		if !now.Before(status.ResetAt) {
			// an unknown limit still lets one request learn the new window
			remaining = max(status.Limit, 1)
		}
		inFlight := r.inFlight
		wake := r.wake

		if remaining-inFlight > 0 {
			r.inFlight++
			r.mu.Unlock()

			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", status.Limit),
				zap.Time("resetAt", status.ResetAt),
				zap.Int("inFlight", inFlight))

			return nil
		}
		r.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", status.Limit),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", inFlight))

		if err := waitSlot(ctx, wake, status.ResetAt.Sub(now)); err != nil {
			return err
		}
	}
}

// waitSlot blocks until wake is closed, untilReset elapses or ctx is done.
// A window that has already reset is not waited on, only a finishing request
// frees a slot then.
func waitSlot(ctx context.Context, wake <-chan struct{}, untilReset time.Duration) error {
	var resetC <-chan time.Time
	if untilReset > 0 {
		timer := time.NewTimer(untilReset)
		defer timer.Stop()
		resetC = timer.C
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
	case <-wake:
	case <-resetC:
	}

	return nil
}

// Done releases a reservation and merges the status reported by the
// response. A zero status, e.g. after a transport error, leaves the view
// unchanged.
func (r *RateLimiter) Done(ctx context.Context, status footballapi.RateLimitStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inFlight > 0 {
		r.inFlight--
	}

	close(r.wake)
	r.wake = make(chan struct{})

	if !status.Known() {
		return
	}

	switch {
	case r.last == nil, status.ResetAt.After(r.last.ResetAt.Add(sameWindow)):
		r.last = &status
	case status.ResetAt.Before(r.last.ResetAt.Add(-sameWindow)):
		return
	case status.Remaining < r.last.Remaining:
		r.last = &status
	default:
		return
	}

	logger.Debug(ctx, "received rate limit status",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", r.inFlight))
}

// call runs fetch inside a reservation of l.
func call[T any](ctx context.Context,
	l *RateLimiter,
	fetch func(ctx context.Context) (T, footballapi.RateLimitStatus, error)) (T, footballapi.RateLimitStatus, error) {
	if err := l.Reserve(ctx); err != nil {
		var zero T

		return zero, footballapi.RateLimitStatus{}, err
	}

	out, status, err := fetch(ctx)
	l.Done(ctx, status)

	return out, status, err
}
