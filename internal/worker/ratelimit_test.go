package worker_test

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"football/internal/worker"
	"football/pkg/footballapi"
	"football/pkg/footballapi/fdorg"
	"football/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	goleak.VerifyTestMain(m)
}

func rlStatus(limit, remaining int, resetAt time.Time) footballapi.RateLimitStatus {
	return footballapi.RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}
}

// reserveAsync starts a Reserve in the background and returns a channel that
// receives its result.
func reserveAsync(ctx context.Context, wg *sync.WaitGroup, l *worker.RateLimiter) <-chan error {
	done := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		done <- l.Reserve(ctx)
	}()

	return done
}

func TestRateLimiter_BootstrapAllowsSingleProbe(t *testing.T) {
	l := worker.NewRateLimiter()
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, l.Reserve(ctx))
	_, inFlight := l.Status()
	require.Equal(t, 1, inFlight)

	second := reserveAsync(ctx, &wg, l)
	select {
	case <-second:
		t.Fatal("second reservation succeeded before the probe finished")
	case <-time.After(100 * time.Millisecond):
	}

	reset := time.Now().Add(time.Minute)
	l.Done(ctx, rlStatus(10, 9, reset))

	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second reservation did not proceed after the probe finished")
	}
	l.Done(ctx, rlStatus(10, 8, reset))

	st, inFlight := l.Status()
	require.Equal(t, 8, st.Remaining)
	require.Zero(t, inFlight)
}

func TestRateLimiter_AllowsUpToRemainingConcurrent_ThenBlocksExtra(t *testing.T) {
	l := worker.NewRateLimiter()
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	reset := time.Now().Add(time.Minute)
	require.NoError(t, l.Reserve(ctx))
	l.Done(ctx, rlStatus(2, 2, reset))

	require.NoError(t, l.Reserve(ctx))
	require.NoError(t, l.Reserve(ctx))

	third := reserveAsync(ctx, &wg, l)
	select {
	case <-third:
		t.Fatal("third reservation succeeded while two were in flight")
	case <-time.After(150 * time.Millisecond):
	}

	// the view stays at Remaining=2, and one slot is free again
	l.Done(ctx, rlStatus(2, 2, reset))

	select {
	case err := <-third:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("third reservation did not proceed after one finished")
	}

	l.Done(ctx, footballapi.RateLimitStatus{})
	l.Done(ctx, footballapi.RateLimitStatus{})
	_, inFlight := l.Status()
	require.Zero(t, inFlight)
}

func TestRateLimiter_WaitsForReset_WhenRemainingZero(t *testing.T) {
	l := worker.NewRateLimiter()
	ctx := context.Background()

	resetDelay := 300 * time.Millisecond
	require.NoError(t, l.Reserve(ctx))
	l.Done(ctx, rlStatus(5, 0, time.Now().Add(resetDelay)))

	start := time.Now()
	require.NoError(t, l.Reserve(ctx))
	require.GreaterOrEqual(t, time.Since(start), resetDelay-75*time.Millisecond,
		"reservation granted before the window reset")
	l.Done(ctx, rlStatus(5, 4, time.Now().Add(time.Minute)))
}

func TestRateLimiter_ContextCancelled(t *testing.T) {
	l := worker.NewRateLimiter()

	require.NoError(t, l.Reserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := l.Reserve(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	l.Done(context.Background(), footballapi.RateLimitStatus{})
}

func TestRateLimiter_UnblocksOnFailure(t *testing.T) {
	l := worker.NewRateLimiter()
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, l.Reserve(ctx))
	next := reserveAsync(ctx, &wg, l)

	// a transport error reports no status
	l.Done(ctx, footballapi.RateLimitStatus{})

	select {
	case err := <-next:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not proceed after a failed request")
	}
	l.Done(ctx, footballapi.RateLimitStatus{})
}

// observed parses the headers of a response received at receivedAt.
func observed(t *testing.T, receivedAt time.Time, resetSecs, available int) footballapi.RateLimitStatus {
	t.Helper()

	h := http.Header{}
	h.Set("X-RequestCounter-Reset", strconv.Itoa(resetSecs))
	h.Set("X-Requests-Available-Minute", strconv.Itoa(available))
	st, err := fdorg.ParseRateLimit(h, receivedAt, 10)
	require.NoError(t, err)

	return st
}

func TestRateLimiter_MergesObservationsConservatively(t *testing.T) {
	l := worker.NewRateLimiter()
	ctx := context.Background()
	t0 := time.Now()

	observe := func(st footballapi.RateLimitStatus) footballapi.RateLimitStatus {
		require.NoError(t, l.Reserve(ctx))
		l.Done(ctx, st)
		got, _ := l.Status()

		return got
	}

	require.Equal(t, 5, observe(observed(t, t0, 40, 5)).Remaining)

	// a response of the same window answered earlier but received later
	require.Equal(t, 5, observe(observed(t, t0.Add(300*time.Millisecond), 40, 7)).Remaining)
	require.Equal(t, 5, observe(observed(t, t0.Add(900*time.Millisecond), 39, 6)).Remaining)

	require.Equal(t, 3, observe(observed(t, t0.Add(1200*time.Millisecond), 39, 3)).Remaining)

	// the next window is adopted even with a higher count
	next := observe(observed(t, t0.Add(41*time.Second), 60, 9))
	require.Equal(t, 9, next.Remaining)

	// a late response of the previous window is stale
	st := observe(observed(t, t0.Add(2*time.Second), 38, 1))
	require.Equal(t, 9, st.Remaining)
	require.True(t, st.ResetAt.Equal(next.ResetAt))

	// unknown status keeps the view
	require.Equal(t, 9, observe(footballapi.RateLimitStatus{}).Remaining)
}

func TestRateLimiter_ElapsedWindowWaitsForRelease(t *testing.T) {
	l := worker.NewRateLimiter()
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx))
	l.Done(ctx, rlStatus(1, 0, time.Now().Add(-time.Second)))

	// the window is over, its single slot is taken
	require.NoError(t, l.Reserve(ctx))

	core, logs := observer.New(zapcore.DebugLevel)
	waitCtx, cancel := context.WithTimeout(logger.WithLogger(ctx, zap.New(core)), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, l.Reserve(waitCtx), context.DeadlineExceeded)
	require.Equal(t, 1, logs.FilterMessage("waiting for rate limit slot").Len(),
		"reservation polled instead of waiting")

	var wg sync.WaitGroup
	defer wg.Wait()
	next := reserveAsync(ctx, &wg, l)
	l.Done(ctx, footballapi.RateLimitStatus{})

	select {
	case err := <-next:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not proceed after the slot was released")
	}
	l.Done(ctx, footballapi.RateLimitStatus{})
}
