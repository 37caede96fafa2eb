package client

import (
	"context"
	"fmt"

	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/http"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// UsersClient implements smugmug.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

type userPayload struct {
	User *smugmug.User `json:"User"`
}

// GetAuthenticated implements smugmug.UsersClient.GetAuthenticated.
func (c *UsersClient) GetAuthenticated(ctx context.Context) (*smugmug.User, error) {
	return c.get(ctx, constants.AuthUserPath, "authenticated user")
}

// Get implements smugmug.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, nickname string) (*smugmug.User, error) {
	return c.get(ctx, constants.APIBasePath+"/user/"+nickname, "user "+nickname)
}

// Node implements smugmug.UsersClient.Node.
func (c *UsersClient) Node(ctx context.Context, user *smugmug.User) (*smugmug.Node, error) {
	if user.Uris.Node == "" {
		return nil, smugmug.ErrNoRootNode
	}

	envelope, err := getEnvelope(ctx, c.httpClient, user.Uris.Node, nil)
	if err != nil {
		return nil, fmt.Errorf("getting root node: %w", err)
	}

	payload, err := decodePayload[nodePayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting root node: %w", err)
	}

	if payload.Node == nil {
		return nil, fmt.Errorf("getting root node: %w", smugmug.ErrResponseMissing)
	}

	return payload.Node, nil
}

func (c *UsersClient) get(ctx context.Context, path, what string) (*smugmug.User, error) {
	envelope, err := getEnvelope(ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	payload, err := decodePayload[userPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	if payload.User == nil {
		return nil, fmt.Errorf("getting %s: %w", what, smugmug.ErrResponseMissing)
	}

	return payload.User, nil
}
