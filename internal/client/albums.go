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

// AlbumsClient implements smugmug.AlbumsClient.
type AlbumsClient struct {
	httpClient *http.Client
}

// NewAlbumsClient creates a new albums client.
func NewAlbumsClient(httpClient *http.Client) *AlbumsClient {
	return &AlbumsClient{httpClient: httpClient}
}

type albumPayload struct {
	Album *smugmug.Album `json:"Album"`
}

type albumListPayload struct {
	Album json.RawMessage `json:"Album"`
	Pages *smugmug.Pages  `json:"Pages"`
}

type albumImagesPayload struct {
	AlbumImage []smugmug.Image `json:"AlbumImage"`
	Pages      *smugmug.Pages  `json:"Pages"`
}

// uploadKeyPatch is the body of upload-key updates. The key is always
// serialized, because clearing it means sending an empty value.
type uploadKeyPatch struct {
	UploadKey string `json:"UploadKey"`
}

// Get implements smugmug.AlbumsClient.Get.
func (c *AlbumsClient) Get(ctx context.Context, albumKey string) (*smugmug.Album, error) {
	envelope, err := getEnvelope(ctx, c.httpClient, constants.APIBasePath+"/album/"+albumKey, nil)
	if err != nil {
		return nil, fmt.Errorf("getting album %s: %w", albumKey, err)
	}

	return albumFromEnvelope(envelope, albumKey)
}

// GetMany implements smugmug.AlbumsClient.GetMany.
func (c *AlbumsClient) GetMany(ctx context.Context, albumKeys []string) ([]smugmug.Album, error) {
	if len(albumKeys) == 0 {
		return nil, nil
	}

	joined := strings.Join(albumKeys, ",")

	envelope, err := getEnvelope(ctx, c.httpClient, constants.APIBasePath+"/album/"+joined, nil)
	if err != nil {
		return nil, fmt.Errorf("getting albums %s: %w", joined, err)
	}

	payload, err := decodePayload[albumListPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting albums %s: %w", joined, err)
	}

	albums, err := oneOrMany[smugmug.Album](payload.Album)
	if err != nil {
		return nil, fmt.Errorf("getting albums %s: %w", joined, err)
	}

	return albums, nil
}

// Images implements smugmug.AlbumsClient.Images.
func (c *AlbumsClient) Images(ctx context.Context, album *smugmug.Album, params *smugmug.ImagesParams) (*smugmug.Iterator[smugmug.Image], error) {
	if album.Uris.AlbumImages == "" {
		return nil, fmt.Errorf("listing images of album %s: %w", album.AlbumKey, smugmug.ErrNoAlbumImages)
	}

	fetch := c.imagesFetcher(album.Uris.AlbumImages)

	return smugmug.NewIterator(ctx, fetch, params.ToValues(), params.PageSize()), nil
}

// imagesFetcher builds the page-fetch function for an album-image
// collection.
func (c *AlbumsClient) imagesFetcher(firstPath string) smugmug.PageFetcher[smugmug.Image] {
	return func(ctx context.Context, pageURL string, query url.Values) ([]smugmug.Image, *smugmug.Pages, error) {
		path := pageURL
		if path == "" {
			path = firstPath
		}

		envelope, err := getEnvelope(ctx, c.httpClient, path, query)
		if err != nil {
			return nil, nil, fmt.Errorf("listing album images: %w", err)
		}

		if len(envelope.Response) == 0 {
			return nil, nil, nil
		}

		payload, err := decodePayload[albumImagesPayload](envelope)
		if err != nil {
			return nil, nil, fmt.Errorf("listing album images: %w", err)
		}

		return payload.AlbumImage, payload.Pages, nil
	}
}

// SetUploadKey implements smugmug.AlbumsClient.SetUploadKey.
func (c *AlbumsClient) SetUploadKey(ctx context.Context, album *smugmug.Album, uploadKey string) (*smugmug.Album, error) {
	envelope, err := patchEnvelope(ctx, c.httpClient, album.URI, &uploadKeyPatch{UploadKey: uploadKey})
	if err != nil {
		return nil, fmt.Errorf("setting upload key on album %s: %w", album.AlbumKey, err)
	}

	return albumFromEnvelope(envelope, album.AlbumKey)
}

// ClearUploadKey implements smugmug.AlbumsClient.ClearUploadKey.
func (c *AlbumsClient) ClearUploadKey(ctx context.Context, album *smugmug.Album) (*smugmug.Album, error) {
	envelope, err := patchEnvelope(ctx, c.httpClient, album.URI, &uploadKeyPatch{})
	if err != nil {
		return nil, fmt.Errorf("clearing upload key on album %s: %w", album.AlbumKey, err)
	}

	return albumFromEnvelope(envelope, album.AlbumKey)
}

func albumFromEnvelope(envelope *smugmug.Envelope, albumKey string) (*smugmug.Album, error) {
	payload, err := decodePayload[albumPayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("decoding album %s: %w", albumKey, err)
	}

	if payload.Album == nil {
		return nil, fmt.Errorf("decoding album %s: %w", albumKey, smugmug.ErrResponseMissing)
	}

	return payload.Album, nil
}
