// Package auth implements OAuth 1.0a request signing for the SmugMug
// API. Tokens are obtained out of band; this package only signs
// requests with an existing consumer key / access token pair.
package auth

// Credentials holds the OAuth 1.0a credential tuple. The consumer pair
// identifies the application, the token pair identifies the user.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	TokenSecret    string
}

// CanSign reports whether the full tuple is present. A partial tuple
// cannot produce a valid signature and must not be silently downgraded
// to unsigned requests.
func (c Credentials) CanSign() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.TokenSecret != ""
}

// HasConsumerKey reports whether unsigned APIKey requests are possible.
func (c Credentials) HasConsumerKey() bool {
	return c.ConsumerKey != ""
}
