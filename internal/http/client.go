// Package http implements the signed transport under the SmugMug API
// client: URL construction, OAuth header injection, rate-limit header
// extraction, and HTTP-level error classification.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/ratelimit"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// Signer produces Authorization header values for outgoing requests.
type Signer interface {
	CanSign() bool
	Authorization(method, rawURL string) (string, error)
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests. In signed mode every request carries an
// OAuth Authorization header; in unsigned mode the consumer key rides
// along as an APIKey query parameter instead.
type Client struct {
	baseURL      string
	apiKey       string
	signer       Signer
	httpClient   *retryablehttp.Client
	binaryClient *retryablehttp.Client
	tracker      *ratelimit.Tracker
	interceptors *smugmug.InterceptorChain
	userAgent    string
	logger       smugmug.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger smugmug.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to automatic retries for 429 and 5xx
// responses. Without it the client never retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
		c.binaryClient.RetryMax = retryMax
		c.binaryClient.RetryWaitMin = waitMin
		c.binaryClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient swaps the underlying standard HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *smugmug.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates an API transport. signer may be nil for unsigned
// operation; apiKey is required either way because unsigned requests
// carry it as a query parameter.
func NewClient(baseURL, apiKey string, signer Signer, opts ...Option) *Client {
	retryClient := newRetryClient(constants.DefaultHTTPTimeout)

	// Archive downloads get their own client with a timeout sized for
	// large transfers.
	binaryClient := newRetryClient(constants.BinaryHTTPTimeout)

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		apiKey:       apiKey,
		signer:       signer,
		httpClient:   retryClient,
		binaryClient: binaryClient,
		tracker:      ratelimit.NewTracker(),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// newRetryClient builds a retryablehttp client that never retries and
// always hands the final response back for classification. The default
// error handler would swallow 429 and 5xx responses once attempts are
// exhausted, losing the status code and the rate-limit headers.
func newRetryClient(timeout time.Duration) *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = timeout

	return retryClient
}

// RateLimit returns the latest rate-limit snapshot, or nil before the
// first JSON response.
func (c *Client) RateLimit() *smugmug.RateLimit {
	return c.tracker.Last()
}

// Do executes a JSON API request.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	err = c.authorize(httpReq.Request, req.Method, requestURL)
	if err != nil {
		return nil, err
	}

	intercepted := &smugmug.InterceptedRequest{
		Method:  req.Method,
		URL:     requestURL,
		Headers: httpReq.Header,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		transportErr := &smugmug.TransportError{Err: err}
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &smugmug.InterceptedResponse{Err: transportErr})

		return nil, fmt.Errorf("executing request: %w", transportErr)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// Rate-limit headers are extracted before any error classification
	// so throttled and failed responses still update the snapshot.
	c.tracker.UpdateFromHeaders(httpResp.Header)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         requestURL,
			"status_code": httpResp.StatusCode,
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	statusErr := classifyStatus(httpResp)
	_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &smugmug.InterceptedResponse{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Err:        statusErr,
	})

	if statusErr != nil {
		return response, statusErr
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// GetBinary downloads raw bytes from an absolute URL. Binary endpoints
// do not return rate-limit headers, so the tracker is left untouched.
func (c *Client) GetBinary(ctx context.Context, rawURL string) ([]byte, error) {
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	err = c.authorize(httpReq.Request, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    rawURL,
			"binary": true,
		})
	}

	httpResp, err := c.binaryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", &smugmug.TransportError{Err: err})
	}
	defer func() { _ = httpResp.Body.Close() }()

	statusErr := classifyStatus(httpResp)
	if statusErr != nil {
		return nil, statusErr
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return data, nil
}

// buildURL resolves the request path against the base URL, merges query
// parameters, and applies the unsigned-mode APIKey parameter. Absolute
// paths pass through untouched so pagination cursors keep working.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		raw = c.baseURL + path
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing request URL %q: %w", raw, err)
	}

	merged := parsed.Query()

	for key, values := range query {
		merged.Del(key)

		for _, value := range values {
			merged.Add(key, value)
		}
	}

	if !c.signed() {
		merged.Set(constants.APIKeyParam, c.apiKey)
	}

	parsed.RawQuery = merged.Encode()

	return parsed.String(), nil
}

// authorize signs the request in signed mode. Unsigned mode relies on
// the APIKey query parameter added during URL construction.
func (c *Client) authorize(httpReq *http.Request, method, requestURL string) error {
	if !c.signed() {
		return nil
	}

	header, err := c.signer.Authorization(method, requestURL)
	if err != nil {
		return fmt.Errorf("authorizing request: %w", err)
	}

	httpReq.Header.Set("Authorization", header)

	return nil
}

func (c *Client) signed() bool {
	return c.signer != nil && c.signer.CanSign()
}

// classifyStatus maps HTTP-level failures to the typed error taxonomy.
// A 429 with a parsable Retry-After becomes a RateLimitError; every
// other non-2xx status is a TransportError. Application-level envelope
// codes are classified by the caller after decoding.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, ok := ratelimit.RetryAfter(resp.Header)
		if ok {
			return &smugmug.RateLimitError{RetryAfter: retryAfter}
		}
	}

	return &smugmug.TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
}
