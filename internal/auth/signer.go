package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is what the OAuth 1.0a protocol specifies
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

const (
	signatureMethod = "HMAC-SHA1"
	oauthVersion    = "1.0"
	nonceLength     = 32
	nonceAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Signer produces OAuth 1.0a Authorization headers for API requests.
// The nonce source and clock are injectable so signing is a pure
// function of its inputs under test.
type Signer struct {
	creds Credentials
	nonce func() string
	now   func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithNonceSource overrides the random nonce generator.
func WithNonceSource(nonce func() string) Option {
	return func(s *Signer) {
		s.nonce = nonce
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// NewSigner creates a Signer for the given credentials.
func NewSigner(creds Credentials, opts ...Option) *Signer {
	signer := &Signer{
		creds: creds,
		nonce: randomNonce,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(signer)
	}

	return signer
}

// CanSign reports whether the signer holds a complete credential tuple.
func (s *Signer) CanSign() bool {
	return s.creds.CanSign()
}

// Authorization returns the OAuth header value for a request. rawURL
// must be the final request URL including any query string; its query
// parameters participate in the signature base string but the header
// itself carries only the oauth_* protocol parameters.
func (s *Signer) Authorization(method, rawURL string) (string, error) {
	if !s.creds.CanSign() {
		return "", fmt.Errorf("signing %s %s: %w", method, rawURL, smugmug.ErrIncompleteCredentials)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	oauthParams := map[string]string{
		"oauth_consumer_key":     s.creds.ConsumerKey,
		"oauth_nonce":            s.nonce(),
		"oauth_signature_method": signatureMethod,
		"oauth_timestamp":        strconv.FormatInt(s.now().Unix(), 10),
		"oauth_token":            s.creds.AccessToken,
		"oauth_version":          oauthVersion,
	}

	signature := s.sign(method, parsed, oauthParams)

	// The header carries the protocol parameters plus the signature,
	// each value percent-encoded, in lexicographic order.
	headerParams := make(map[string]string, len(oauthParams)+1)
	for key, value := range oauthParams {
		headerParams[key] = value
	}

	headerParams["oauth_signature"] = signature

	keys := make([]string, 0, len(headerParams))
	for key := range headerParams {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", key, PercentEncode(headerParams[key])))
	}

	return "OAuth " + strings.Join(parts, ", "), nil
}

// sign computes the base64 HMAC-SHA1 signature over the OAuth base
// string for the request.
func (s *Signer) sign(method string, requestURL *url.URL, oauthParams map[string]string) string {
	type pair struct {
		key   string
		value string
	}

	var pairs []pair

	// The original request query parameters are signed alongside the
	// protocol parameters; keys and values are encoded before sorting.
	for key, values := range requestURL.Query() {
		for _, value := range values {
			pairs = append(pairs, pair{key: PercentEncode(key), value: PercentEncode(value)})
		}
	}

	for key, value := range oauthParams {
		pairs = append(pairs, pair{key: PercentEncode(key), value: PercentEncode(value)})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key != pairs[j].key {
			return pairs[i].key < pairs[j].key
		}

		return pairs[i].value < pairs[j].value
	})

	encoded := make([]string, 0, len(pairs))
	for _, p := range pairs {
		encoded = append(encoded, p.key+"="+p.value)
	}

	baseURL := requestURL.Scheme + "://" + requestURL.Host + requestURL.EscapedPath()
	baseString := strings.ToUpper(method) + "&" + PercentEncode(baseURL) + "&" + PercentEncode(strings.Join(encoded, "&"))
	signingKey := PercentEncode(s.creds.ConsumerSecret) + "&" + PercentEncode(s.creds.TokenSecret)

	mac := hmac.New(sha1.New, []byte(signingKey))
	mac.Write([]byte(baseString))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// PercentEncode applies the RFC 3986 encoding OAuth requires: only
// ALPHA, DIGIT, "-", ".", "_", and "~" pass through, every other byte
// becomes %XX with uppercase hex.
func PercentEncode(s string) string {
	var builder strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			builder.WriteByte(c)
		} else {
			builder.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}

	return builder.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	default:
		return false
	}
}

// randomNonce returns a fresh 32-character alphanumeric nonce.
func randomNonce() string {
	buf := make([]byte, nonceLength)

	_, err := rand.Read(buf)
	if err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("reading random bytes: %v", err))
	}

	for i, b := range buf {
		buf[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}

	return string(buf)
}
