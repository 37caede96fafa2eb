package client

import (
	"context"
	"crypto/md5" //nolint:gosec // the API publishes MD5 digests for archive integrity checks
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/photoflow-io/smugmug/internal/constants"
	"github.com/photoflow-io/smugmug/internal/http"
	"github.com/photoflow-io/smugmug/pkg/smugmug"
)

// ImagesClient implements smugmug.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{httpClient: httpClient}
}

type imagePayload struct {
	Image *smugmug.Image `json:"Image"`
}

// Get implements smugmug.ImagesClient.Get.
func (c *ImagesClient) Get(ctx context.Context, imageKey string) (*smugmug.Image, error) {
	envelope, err := getEnvelope(ctx, c.httpClient, constants.APIBasePath+"/image/"+imageKey, nil)
	if err != nil {
		return nil, fmt.Errorf("getting image %s: %w", imageKey, err)
	}

	payload, err := decodePayload[imagePayload](envelope)
	if err != nil {
		return nil, fmt.Errorf("getting image %s: %w", imageKey, err)
	}

	if payload.Image == nil {
		return nil, fmt.Errorf("getting image %s: %w", imageKey, smugmug.ErrResponseMissing)
	}

	return payload.Image, nil
}

// DownloadArchive implements smugmug.ImagesClient.DownloadArchive. The
// downloaded bytes are verified against the size and MD5 digest the
// API advertised on the image record.
func (c *ImagesClient) DownloadArchive(ctx context.Context, image *smugmug.Image) ([]byte, error) {
	if image.ArchivedURI == "" {
		return nil, fmt.Errorf("downloading archive of %s: %w", image.FileName, smugmug.ErrNoArchive)
	}

	data, err := c.httpClient.GetBinary(ctx, image.ArchivedURI)
	if err != nil {
		return nil, fmt.Errorf("downloading archive of %s: %w", image.FileName, err)
	}

	if image.ArchivedSize > 0 && uint64(len(data)) != image.ArchivedSize {
		return nil, fmt.Errorf("downloading archive of %s: got %d bytes, want %d: %w",
			image.FileName, len(data), image.ArchivedSize, smugmug.ErrArchiveSizeMismatch)
	}

	if image.ArchivedMD5 != "" {
		digest := md5.Sum(data) //nolint:gosec // integrity check against the API's digest, not a security boundary
		if !strings.EqualFold(hex.EncodeToString(digest[:]), image.ArchivedMD5) {
			return nil, fmt.Errorf("downloading archive of %s: %w", image.FileName, smugmug.ErrArchiveChecksum)
		}
	}

	return data, nil
}
