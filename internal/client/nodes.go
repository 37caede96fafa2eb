package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/http"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// NodesClient implements smugmug.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{httpClient: httpClient}
}

type nodePayload struct {
	Node *smugmug.Node `json:"Node"`
}

type nodeListPayload struct {
	Node  json.RawMessage `json:"Node"`
	Pages *smugmug.Pages  `json:"Pages"`
}

// Get implements smugmug.NodesClient.Get.
func (c *NodesClient) Get(ctx context.Context, nodeID string) (*smugmug.Node, error) {
	envelope, err := getEnvelope(ctx, c.httpClient, constants.APIBasePath+"/node/"+nodeID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting node %s: %w", nodeID, err)
	}

	payload, err := decodePayload[nodePayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting node %s: %w", nodeID, err)
	}

	if payload.Node == nil {
		return nil, fmt.Errorf("getting node %s: %w", nodeID, smugmug.ErrResponseMissing)
	}

	return payload.Node, nil
}

// GetMany implements smugmug.NodesClient.GetMany. The ids are joined
// with commas into a single request.
func (c *NodesClient) GetMany(ctx context.Context, nodeIDs []string) ([]smugmug.Node, error) {
	if len(nodeIDs) == 0 {
		return nil, nil
	}

	joined := strings.Join(nodeIDs, ",")

	envelope, err := getEnvelope(ctx, c.httpClient, constants.APIBasePath+"/node/"+joined, nil)
	if err != nil {
		return nil, fmt.Errorf("getting nodes %s: %w", joined, err)
	}

	payload, err := decodePayload[nodeListPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting nodes %s: %w", joined, err)
	}

	nodes, err := oneOrMany[smugmug.Node](payload.Node)
	if err != nil {
		return nil, fmt.Errorf("getting nodes %s: %w", joined, err)
	}

	return nodes, nil
}

// Children implements smugmug.NodesClient.Children. The returned
// iterator follows the collection's pagination cursor lazily.
func (c *NodesClient) Children(ctx context.Context, node *smugmug.Node, params *smugmug.ChildrenParams) (*smugmug.Iterator[smugmug.Node], error) {
	if node.Uris.ChildNodes == "" {
		return nil, fmt.Errorf("listing children of node %s: %w", node.NodeID(), smugmug.ErrNoChildNodes)
	}

	fetch := c.childrenFetcher(node.Uris.ChildNodes)

	return smugmug.NewIterator(ctx, fetch, params.ToValues(), params.PageSize()), nil
}

// childrenFetcher builds the page-fetch function for a child-node
// collection.
func (c *NodesClient) childrenFetcher(firstPath string) smugmug.PageFetcher[smugmug.Node] {
	return func(ctx context.Context, pageURL string, query url.Values) ([]smugmug.Node, *smugmug.Pages, error) {
		path := pageURL
		if path == "" {
			path = firstPath
		}

		envelope, err := getEnvelope(ctx, c.httpClient, path, query)
		if err != nil {
			return nil, nil, fmt.Errorf("listing child nodes: %w", err)
		}

		// A successful envelope without a payload is an empty collection.
		if len(envelope.Response) == 0 {
			return nil, nil, nil
		}

		payload, err := decodePayload[nodeListPayload](envelope)
		if err != nil {
			return nil, nil, fmt.Errorf("listing child nodes: %w", err)
		}

		nodes, err := oneOrMany[smugmug.Node](payload.Node)
		if err != nil {
			return nil, nil, fmt.Errorf("listing child nodes: %w", err)
		}

		return nodes, payload.Pages, nil
	}
}

// CreateAlbum implements smugmug.NodesClient.CreateAlbum. The API
// answers the node POST with the created album's details.
func (c *NodesClient) CreateAlbum(ctx context.Context, parent *smugmug.Node, props *smugmug.CreateAlbumProps) (*smugmug.Album, error) {
	if parent.Uris.ChildNodes == "" {
		return nil, fmt.Errorf("creating album under node %s: %w", parent.NodeID(), smugmug.ErrNoChildNodes)
	}

	if props.Type == "" {
		props.Type = smugmug.NodeTypeAlbum
	}

	envelope, err := postEnvelope(ctx, c.httpClient, parent.Uris.ChildNodes, props)
	if err != nil {
		return nil, fmt.Errorf("creating album %q: %w", props.Name, err)
	}

	payload, err := decodePayload[albumPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("creating album %q: %w", props.Name, err)
	}

	if payload.Album == nil {
		return nil, fmt.Errorf("creating album %q: %w", props.Name, smugmug.ErrResponseMissing)
	}

	return payload.Album, nil
}

// Album implements smugmug.NodesClient.Album.
func (c *NodesClient) Album(ctx context.Context, node *smugmug.Node) (*smugmug.Album, error) {
	if node.Uris.Album == "" {
		return nil, fmt.Errorf("getting album of node %s: %w", node.NodeID(), smugmug.ErrNotAnAlbum)
	}

	envelope, err := getEnvelope(ctx, c.httpClient, node.Uris.Album, nil)
	if err != nil {
		return nil, fmt.Errorf("getting album of node %s: %w", node.NodeID(), err)
	}

	payload, err := decodePayload[albumPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting album of node %s: %w", node.NodeID(), err)
	}

	if payload.Album == nil {
		return nil, fmt.Errorf("getting album of node %s: %w", node.NodeID(), smugmug.ErrResponseMissing)
	}

	return payload.Album, nil
}
