package smugmug

import (
	"errors"
	"fmt"
	"time"
)

// APIError represents a failure reported inside a SmugMug response
// envelope, i.e. a request that reached the API but was rejected.
type APIError struct {
	Code    int    `json:"Code"    yaml:"code"`
	Message string `json:"Message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// UnknownCodeError is returned when the envelope carries a code outside
// the documented success and failure sets.
type UnknownCodeError struct {
	Code    int    `json:"Code"    yaml:"code"`
	Message string `json:"Message" yaml:"message"`
}

// Error implements the error interface.
func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown status code %d: %s", e.Code, e.Message)
}

// TransportError represents an HTTP-level failure: a connection error or
// a non-2xx status that never produced a decodable envelope.
type TransportError struct {
	StatusCode int
	Status     string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}

	return fmt.Sprintf("transport error: %s", e.Status)
}

// Unwrap returns the underlying error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned when the API throttles a request with
// HTTP 429 and a Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
}

// MalformedResponseError is returned when a response body cannot be
// decoded as a SmugMug envelope.
type MalformedResponseError struct {
	Err  error
	Body []byte
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Documented envelope status codes.
const (
	CodeOK                  = 200
	CodeCreated             = 201
	CodeAccepted            = 202
	CodeMovedPermanently    = 301
	CodeFound               = 302
	CodeBadRequest          = 400
	CodeUnauthorized        = 401
	CodePaymentRequired     = 402
	CodeForbidden           = 403
	CodeNotFound            = 404
	CodeMethodNotAllowed    = 405
	CodeNotAcceptable       = 406
	CodeProxyAuthRequired   = 407
	CodeTooManyRequests     = 429
	CodeInternalServerError = 500
	CodeServiceUnavailable  = 503
)

// Static errors for err113 compliance.
var (
	ErrIncompleteCredentials = errors.New("incomplete credentials: consumer key, consumer secret, access token, and token secret are all required for signing")
	ErrAPIKeyRequired        = errors.New("consumer API key is required")
	ErrResponseMissing       = errors.New("response payload missing")
	ErrNoMoreItems           = errors.New("no more items")
	ErrNotAnAlbum            = errors.New("node is not an album")
	ErrNoRootNode            = errors.New("user has no root node endpoint")
	ErrNoChildNodes          = errors.New("node has no child nodes endpoint")
	ErrNoAlbumImages         = errors.New("album has no images endpoint")
	ErrNoArchive             = errors.New("image has no archive to download")
	ErrArchiveSizeMismatch   = errors.New("archive size does not match expected size")
	ErrArchiveChecksum       = errors.New("archive checksum does not match expected digest")
	ErrConfigRequired        = errors.New("config is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeForbidden
	}

	return false
}

// IsRateLimited checks if the error is a throttling error, either from
// the HTTP layer (429 + Retry-After) or from the envelope code.
func IsRateLimited(err error) bool {
	rlErr := &RateLimitError{}
	if errors.As(err, &rlErr) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == CodeTooManyRequests
	}

	return false
}

// successCodes are the envelope codes treated as success.
var successCodes = map[int]bool{
	CodeOK:               true,
	CodeCreated:          true,
	CodeAccepted:         true,
	CodeMovedPermanently: true,
	CodeFound:            true,
}

// failureCodes are the documented envelope failure codes.
var failureCodes = map[int]bool{
	CodeBadRequest:          true,
	CodeUnauthorized:        true,
	CodePaymentRequired:     true,
	CodeForbidden:           true,
	CodeNotFound:            true,
	CodeMethodNotAllowed:    true,
	CodeNotAcceptable:       true,
	CodeProxyAuthRequired:   true,
	CodeTooManyRequests:     true,
	CodeInternalServerError: true,
	CodeServiceUnavailable:  true,
}

// ClassifyCode maps an envelope status code to nil (success), an
// *APIError (documented failure), or an *UnknownCodeError.
func ClassifyCode(code int, message string) error {
	switch {
	case successCodes[code]:
		return nil
	case failureCodes[code]:
		return &APIError{Code: code, Message: message}
	default:
		return &UnknownCodeError{Code: code, Message: message}
	}
}
