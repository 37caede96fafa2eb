package client

import (
	"context"
	"crypto/md5" //nolint:gosec // matches the digest the API publishes
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/image/ABC123-0", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writer.Header().Set("Content-Type", "application/json")
		fmt.Fprint(writer, `{
			"Code": 200,
			"Message": "Ok",
			"Response": {
				"Image": {
					"Uri": "/api/v2/image/ABC123-0",
					"FileName": "sunset.jpg",
					"Format": "JPG",
					"ArchivedUri": "https://photos.example.com/archive/sunset.jpg",
					"ArchivedSize": 5,
					"ArchivedMD5": "7d793037a0760186574b0282f2f435e7"
				}
			}
		}`)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	image, err := client.Images().Get(context.Background(), "ABC123-0")
	require.NoError(t, err)
	assert.Equal(t, "sunset.jpg", image.FileName)
	assert.Equal(t, uint64(5), image.ArchivedSize)
}

func archiveImage(serverURL string, data []byte) *smugmug.Image {
	digest := md5.Sum(data) //nolint:gosec // test fixture digest

	return &smugmug.Image{
		FileName:     "sunset.jpg",
		ArchivedURI:  serverURL + "/archive/sunset.jpg",
		ArchivedSize: uint64(len(data)),
		ArchivedMD5:  hex.EncodeToString(digest[:]),
	}
}

func TestImagesClient_DownloadArchive(t *testing.T) {
	t.Parallel()

	content := []byte("original image bytes")

	t.Run("verifies size and digest", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/archive/sunset.jpg", request.URL.Path)
			assert.NotEmpty(t, request.Header.Get("Authorization"))

			writer.Header().Set("Content-Type", "image/jpeg")
			_, _ = writer.Write(content)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		data, err := client.Images().DownloadArchive(context.Background(), archiveImage(server.URL, content))
		require.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("rejects size mismatch", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("truncated"))
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Images().DownloadArchive(context.Background(), archiveImage(server.URL, content))
		require.ErrorIs(t, err, smugmug.ErrArchiveSizeMismatch)
	})

	t.Run("rejects digest mismatch", func(t *testing.T) {
		t.Parallel()

		corrupted := []byte("corrupted image byte")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write(corrupted)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		// Same length as the original so only the digest check fires.
		image := archiveImage(server.URL, content)
		image.ArchivedSize = uint64(len(corrupted))

		_, err := client.Images().DownloadArchive(context.Background(), image)
		require.ErrorIs(t, err, smugmug.ErrArchiveChecksum)
	})

	t.Run("requires an archive URI", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://127.0.0.1:1")

		_, err := client.Images().DownloadArchive(context.Background(), &smugmug.Image{FileName: "x.jpg"})
		require.ErrorIs(t, err, smugmug.ErrNoArchive)
	})

	t.Run("surfaces transport errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Images().DownloadArchive(context.Background(), archiveImage(server.URL, content))
		require.Error(t, err)

		var transportErr *smugmug.TransportError

		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	})
}
