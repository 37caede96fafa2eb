package ratelimit_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/photoflow-io/smugmug/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_NilBeforeFirstUpdate(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker()
	assert.Nil(t, tracker.Last())
}

func TestTracker_UpdateFromHeaders(t *testing.T) {
	t.Parallel()

	observed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := ratelimit.NewTrackerWithClock(func() time.Time { return observed })

	headers := http.Header{}
	headers.Set("X-RateLimit-Remaining", "5")
	headers.Set("X-RateLimit-Reset", "1717243200")

	tracker.UpdateFromHeaders(headers)

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.IsValid())
	assert.Equal(t, observed, snapshot.ObservedAt)

	remaining, ok := snapshot.Remaining()
	require.True(t, ok)
	assert.Equal(t, 5, remaining)

	reset, ok := snapshot.WindowReset()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1717243200, 0), reset)

	_, ok = snapshot.RetryAfter()
	assert.False(t, ok)
}

func TestTracker_RetryAfterHeader(t *testing.T) {
	t.Parallel()

	observed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker := ratelimit.NewTrackerWithClock(func() time.Time { return observed })

	headers := http.Header{}
	headers.Set("Retry-After", "30")

	tracker.UpdateFromHeaders(headers)

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.IsValid())

	retryAfter, ok := snapshot.RetryAfter()
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, retryAfter)

	resume, ok := snapshot.ResumeAfter()
	require.True(t, ok)
	assert.Equal(t, observed.Add(30*time.Second), resume)
}

func TestTracker_EmptyHeadersStillPublish(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker()
	tracker.UpdateFromHeaders(http.Header{})

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.IsValid())
	assert.False(t, snapshot.ObservedAt.IsZero())
}

func TestTracker_UnparsableHeadersAreSkipped(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker()

	headers := http.Header{}
	headers.Set("X-RateLimit-Remaining", "lots")
	headers.Set("Retry-After", "later")

	tracker.UpdateFromHeaders(headers)

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.IsValid())
}

func TestTracker_ReplacesWholesale(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker()

	first := http.Header{}
	first.Set("X-RateLimit-Remaining", "10")
	first.Set("X-RateLimit-Reset", "1717243200")
	tracker.UpdateFromHeaders(first)

	second := http.Header{}
	second.Set("Retry-After", "60")
	tracker.UpdateFromHeaders(second)

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)

	// The earlier remaining count must not bleed into the new snapshot.
	_, ok := snapshot.Remaining()
	assert.False(t, ok)

	retryAfter, ok := snapshot.RetryAfter()
	require.True(t, ok)
	assert.Equal(t, 60*time.Second, retryAfter)
}

func TestTracker_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	tracker := ratelimit.NewTracker()

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			headers := http.Header{}
			headers.Set("X-RateLimit-Remaining", "5")
			tracker.UpdateFromHeaders(headers)
		}()

		go func() {
			defer wg.Done()

			snapshot := tracker.Last()
			if snapshot != nil {
				snapshot.Remaining()
			}
		}()
	}

	wg.Wait()

	snapshot := tracker.Last()
	require.NotNil(t, snapshot)

	remaining, ok := snapshot.Remaining()
	require.True(t, ok)
	assert.Equal(t, 5, remaining)
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	headers := http.Header{}

	_, ok := ratelimit.RetryAfter(headers)
	assert.False(t, ok)

	headers.Set("Retry-After", "30")

	retryAfter, ok := ratelimit.RetryAfter(headers)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, retryAfter)

	headers.Set("Retry-After", "soon")

	_, ok = ratelimit.RetryAfter(headers)
	assert.False(t, ok)
}
