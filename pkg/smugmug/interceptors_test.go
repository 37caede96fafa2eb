package smugmug_test

import (
	"context"
	"testing"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacingInterceptor(t *testing.T) {
	t.Parallel()
	t.Run("allows an initial burst", func(t *testing.T) {
		t.Parallel()

		interceptor, stop := smugmug.PacingInterceptor(2)
		defer stop()

		req := &smugmug.InterceptedRequest{Method: "GET", URL: "https://api.example.com"}

		require.NoError(t, interceptor(context.Background(), req))
		require.NoError(t, interceptor(context.Background(), req))
	})

	t.Run("honors context cancellation while waiting", func(t *testing.T) {
		t.Parallel()

		interceptor, stop := smugmug.PacingInterceptor(1)
		defer stop()

		req := &smugmug.InterceptedRequest{Method: "GET", URL: "https://api.example.com"}

		require.NoError(t, interceptor(context.Background(), req))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := interceptor(ctx, req)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		t.Parallel()

		_, stop := smugmug.PacingInterceptor(1)
		stop()
		stop()
	})
}
