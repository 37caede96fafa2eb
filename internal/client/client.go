// Package client implements the smugmug.Client interface on top of the
// signed transport.
package client

import (
	"fmt"

	"github.com/photoflow-io/smugmug/internal/auth"
	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/http"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// Client implements the smugmug.Client interface.
type Client struct {
	httpClient *http.Client
	logger     smugmug.Logger

	// Resource clients
	users  smugmug.UsersClient
	nodes  smugmug.NodesClient
	albums smugmug.AlbumsClient
	images smugmug.ImagesClient
}

// New creates an API client from the given configuration. A complete
// credential tuple selects signed operation; a bare consumer key
// selects unsigned operation; a partial token pair is rejected.
func New(config *smugmug.Config) (*Client, error) {
	if config == nil {
		return nil, smugmug.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, smugmug.ErrAPIKeyRequired
	}

	creds := auth.Credentials{
		ConsumerKey:    config.APIKey,
		ConsumerSecret: config.APISecret,
		AccessToken:    config.AccessToken,
		TokenSecret:    config.TokenSecret,
	}

	if (config.AccessToken != "" || config.TokenSecret != "") && !creds.CanSign() {
		return nil, fmt.Errorf("building client: %w", smugmug.ErrIncompleteCredentials)
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.APIOrigin
	}

	var signer http.Signer
	if creds.CanSign() {
		signer = auth.NewSigner(creds)
	}

	httpClient := http.NewClient(endpoint, config.APIKey, signer, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *smugmug.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
	c.albums = NewAlbumsClient(c.httpClient)
	c.images = NewImagesClient(c.httpClient)
}

// Users implements smugmug.Client.Users.
func (c *Client) Users() smugmug.UsersClient {
	return c.users
}

// Nodes implements smugmug.Client.Nodes.
func (c *Client) Nodes() smugmug.NodesClient {
	return c.nodes
}

// Albums implements smugmug.Client.Albums.
func (c *Client) Albums() smugmug.AlbumsClient {
	return c.albums
}

// Images implements smugmug.Client.Images.
func (c *Client) Images() smugmug.ImagesClient {
	return c.images
}

// LastRateLimit implements smugmug.Client.LastRateLimit.
func (c *Client) LastRateLimit() *smugmug.RateLimit {
	return c.httpClient.RateLimit()
}
