package smugmug

import (
	"context"
	"time"
)

// UsersClient provides access to user endpoints.
type UsersClient interface {
	// GetAuthenticated returns the user owning the access token.
	GetAuthenticated(ctx context.Context) (*User, error)
	// Get returns a user by nickname.
	Get(ctx context.Context, nickname string) (*User, error)
	// Node returns the root node of a user's content tree.
	Node(ctx context.Context, user *User) (*Node, error)
}

// NodesClient provides access to node endpoints.
type NodesClient interface {
	// Get returns a node by id.
	Get(ctx context.Context, nodeID string) (*Node, error)
	// GetMany returns several nodes in a single request.
	GetMany(ctx context.Context, nodeIDs []string) ([]Node, error)
	// Children returns an iterator over a node's direct children.
	Children(ctx context.Context, node *Node, params *ChildrenParams) (*Iterator[Node], error)
	// CreateAlbum creates an album under a folder node and returns the
	// created album's details.
	CreateAlbum(ctx context.Context, parent *Node, props *CreateAlbumProps) (*Album, error)
	// Album returns the album details of an album-type node.
	Album(ctx context.Context, node *Node) (*Album, error)
}

// AlbumsClient provides access to album endpoints.
type AlbumsClient interface {
	// Get returns an album by key.
	Get(ctx context.Context, albumKey string) (*Album, error)
	// GetMany returns several albums in a single request.
	GetMany(ctx context.Context, albumKeys []string) ([]Album, error)
	// Images returns an iterator over an album's images.
	Images(ctx context.Context, album *Album, params *ImagesParams) (*Iterator[Image], error)
	// SetUploadKey sets the album's upload key.
	SetUploadKey(ctx context.Context, album *Album, uploadKey string) (*Album, error)
	// ClearUploadKey removes the album's upload key.
	ClearUploadKey(ctx context.Context, album *Album) (*Album, error)
}

// ImagesClient provides access to image endpoints.
type ImagesClient interface {
	// Get returns an image by key.
	Get(ctx context.Context, imageKey string) (*Image, error)
	// DownloadArchive downloads the image's original archive bytes and
	// verifies them against the advertised size and MD5 digest.
	DownloadArchive(ctx context.Context, image *Image) ([]byte, error)
}

// Client is the top-level SmugMug API client.
type Client interface {
	Users() UsersClient
	Nodes() NodesClient
	Albums() AlbumsClient
	Images() ImagesClient

	// LastRateLimit returns the most recently observed rate-limit
	// window, or nil if no request has completed yet.
	LastRateLimit() *RateLimit
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a smugmug.Client.
//
// # Authentication modes
//
// The client operates in one of two modes, chosen at construction time:
//
//  1. Signed: APIKey, APISecret, AccessToken, and TokenSecret are all
//     set. Every request carries an OAuth 1.0a HMAC-SHA1 Authorization
//     header and can reach private resources.
//  2. Unsigned: only APIKey is set. Requests carry the key as an APIKey
//     query parameter and can reach public resources only.
//
// A partial token pair (AccessToken without TokenSecret or vice versa)
// is rejected at construction rather than silently downgraded.
//
// # Retries
//
// The client never retries on its own: throttling and server errors are
// surfaced as typed errors so callers decide what to do. Setting
// RetryMax > 0 opts in to bounded retries with backoff for 429 and 5xx
// responses.
type Config struct {
	// APIEndpoint: base URL for the SmugMug API. Defaults to
	// "https://api.smugmug.com" when empty.
	APIEndpoint string

	// APIKey: OAuth consumer key. Required in both modes.
	APIKey string
	// APISecret: OAuth consumer secret. Required for signing.
	APISecret string
	// AccessToken: OAuth access token identifying the user.
	AccessToken string
	// TokenSecret: secret paired with AccessToken.
	TokenSecret string

	// RetryMax: maximum number of retries for 429 and 5xx responses.
	// 0 disables retries entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
