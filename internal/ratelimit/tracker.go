// Package ratelimit tracks the rate-limit window advertised by API
// response headers.
package ratelimit

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// Rate-limit headers returned by the API.
const (
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// Tracker holds the most recently observed rate-limit window. Updates
// replace the snapshot wholesale, so concurrent readers always see one
// coherent observation rather than a mix of two responses.
type Tracker struct {
	last atomic.Pointer[smugmug.RateLimit]
	now  func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// NewTrackerWithClock creates a tracker with an injectable clock.
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// Last returns the latest snapshot, or nil if no response has been
// observed yet.
func (t *Tracker) Last() *smugmug.RateLimit {
	return t.last.Load()
}

// UpdateFromHeaders parses the rate-limit headers of a response and
// publishes a new snapshot. Absent or unparsable headers leave the
// corresponding fields unset; the snapshot is published regardless so
// ObservedAt always reflects the latest response.
func (t *Tracker) UpdateFromHeaders(headers http.Header) {
	snapshot := &smugmug.RateLimit{ObservedAt: t.now()}

	if raw := headers.Get(HeaderRemaining); raw != "" {
		remaining, err := strconv.Atoi(raw)
		if err == nil {
			snapshot.RemainingRequests = &remaining
		}
	}

	if raw := headers.Get(HeaderReset); raw != "" {
		epoch, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			resetAt := time.Unix(epoch, 0)
			snapshot.ResetAt = &resetAt
		}
	}

	if raw := headers.Get(HeaderRetryAfter); raw != "" {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			retryAfter := time.Duration(seconds) * time.Second
			snapshot.RetryAfterSeconds = &retryAfter
		}
	}

	t.last.Store(snapshot)
}

// RetryAfter parses the Retry-After header in isolation, for mapping a
// 429 response to a throttling error.
func RetryAfter(headers http.Header) (time.Duration, bool) {
	raw := headers.Get(HeaderRetryAfter)
	if raw == "" {
		return 0, false
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return time.Duration(seconds) * time.Second, true
}
