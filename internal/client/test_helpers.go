package client

import (
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// NewTestClient creates a client with a complete credential tuple
// pointed at the given endpoint. Requests it makes carry an OAuth
// Authorization header.
func NewTestClient(endpoint string) *Client {
	client, err := New(&smugmug.Config{
		APIEndpoint: endpoint,
		APIKey:      "test-consumer-key",
		APISecret:   "test-consumer-secret",
		AccessToken: "test-access-token",
		TokenSecret: "test-token-secret",
	})
	if err != nil {
		panic(err)
	}

	return client
}

// NewUnsignedTestClient creates a client with only a consumer key.
// Requests it makes carry the key as a query parameter instead of an
// Authorization header.
func NewUnsignedTestClient(endpoint string) *Client {
	client, err := New(&smugmug.Config{
		APIEndpoint: endpoint,
		APIKey:      "test-consumer-key",
	})
	if err != nil {
		panic(err)
	}

	return client
}
