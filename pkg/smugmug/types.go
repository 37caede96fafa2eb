package smugmug

import (
	"encoding/json"
	"time"
)

// Envelope is the wrapper every JSON response from the API arrives in.
// The Code and Message fields duplicate HTTP status information at the
// application layer; Response carries the operation-specific payload
// and may be absent entirely.
type Envelope struct {
	Code     int             `json:"Code"`
	Message  string          `json:"Message"`
	Response json.RawMessage `json:"Response,omitempty"`
}

// Pages describes the pagination state of a collection response. It is
// delivered inside the Response payload as a sibling of the item array.
type Pages struct {
	Total          int    `json:"Total"`
	Start          int    `json:"Start"`
	Count          int    `json:"Count"`
	RequestedCount int    `json:"RequestedCount"`
	FirstPage      string `json:"FirstPage,omitempty"`
	LastPage       string `json:"LastPage,omitempty"`
	NextPage       string `json:"NextPage,omitempty"`
	PrevPage       string `json:"PrevPage,omitempty"`
}

// HasNextPage reports whether the API advertised a further page. The
// cursor is the authoritative termination signal.
func (p *Pages) HasNextPage() bool {
	return p != nil && p.NextPage != ""
}

// RateLimit is a snapshot of the rate-limit window reported by the most
// recent API response. Each field is optional because the API does not
// return every header on every response.
type RateLimit struct {
	// RemainingRequests: requests left in the current window.
	RemainingRequests *int
	// ResetAt: instant the current window resets.
	ResetAt *time.Time
	// RetryAfterSeconds: server-instructed wait before retrying.
	RetryAfterSeconds *time.Duration
	// ObservedAt: local time the snapshot was taken.
	ObservedAt time.Time
}

// Remaining returns the number of requests left in the window.
func (r *RateLimit) Remaining() (int, bool) {
	if r == nil || r.RemainingRequests == nil {
		return 0, false
	}

	return *r.RemainingRequests, true
}

// WindowReset returns the instant the current window resets.
func (r *RateLimit) WindowReset() (time.Time, bool) {
	if r == nil || r.ResetAt == nil {
		return time.Time{}, false
	}

	return *r.ResetAt, true
}

// RetryAfter returns the server-instructed wait duration.
func (r *RateLimit) RetryAfter() (time.Duration, bool) {
	if r == nil || r.RetryAfterSeconds == nil {
		return 0, false
	}

	return *r.RetryAfterSeconds, true
}

// ResumeAfter returns the local instant after which requests may resume,
// derived from ObservedAt plus the retry-after duration.
func (r *RateLimit) ResumeAfter() (time.Time, bool) {
	retryAfter, ok := r.RetryAfter()
	if !ok {
		return time.Time{}, false
	}

	return r.ObservedAt.Add(retryAfter), true
}

// IsValid reports whether the snapshot carries any usable information,
// i.e. at least a remaining count or a retry-after duration.
func (r *RateLimit) IsValid() bool {
	if r == nil {
		return false
	}

	return r.RemainingRequests != nil || r.RetryAfterSeconds != nil
}
