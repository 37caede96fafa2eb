package smugmug_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int
		message string
		check   func(t *testing.T, err error)
	}{
		{
			name: "200 is success",
			code: 200,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.NoError(t, err)
			},
		},
		{
			name: "201 is success",
			code: 201,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.NoError(t, err)
			},
		},
		{
			name: "301 is success",
			code: 301,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.NoError(t, err)
			},
		},
		{
			name:    "404 is an API error",
			code:    404,
			message: "Not Found",
			check: func(t *testing.T, err error) {
				t.Helper()

				apiErr := &smugmug.APIError{}
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, 404, apiErr.Code)
				assert.Equal(t, "Not Found", apiErr.Message)
			},
		},
		{
			name:    "429 is an API error",
			code:    429,
			message: "Too Many Requests",
			check: func(t *testing.T, err error) {
				t.Helper()

				apiErr := &smugmug.APIError{}
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, 429, apiErr.Code)
			},
		},
		{
			name:    "999 is an unknown code",
			code:    999,
			message: "weird",
			check: func(t *testing.T, err error) {
				t.Helper()

				unknownErr := &smugmug.UnknownCodeError{}
				require.ErrorAs(t, err, &unknownErr)
				assert.Equal(t, 999, unknownErr.Code)
				assert.Equal(t, "weird", unknownErr.Message)
			},
		},
		{
			name: "0 is an unknown code",
			code: 0,
			check: func(t *testing.T, err error) {
				t.Helper()

				unknownErr := &smugmug.UnknownCodeError{}
				require.ErrorAs(t, err, &unknownErr)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, smugmug.ClassifyCode(tt.code, tt.message))
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	t.Run("IsNotFound", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("getting node: %w", &smugmug.APIError{Code: smugmug.CodeNotFound, Message: "Not Found"})
		assert.True(t, smugmug.IsNotFound(err))
		assert.False(t, smugmug.IsUnauthorized(err))
		assert.False(t, smugmug.IsNotFound(errors.New("plain")))
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		t.Parallel()

		err := &smugmug.APIError{Code: smugmug.CodeUnauthorized, Message: "Unauthorized"}
		assert.True(t, smugmug.IsUnauthorized(err))
		assert.False(t, smugmug.IsForbidden(err))
	})

	t.Run("IsForbidden", func(t *testing.T) {
		t.Parallel()

		err := &smugmug.APIError{Code: smugmug.CodeForbidden, Message: "Forbidden"}
		assert.True(t, smugmug.IsForbidden(err))
	})

	t.Run("IsRateLimited matches both layers", func(t *testing.T) {
		t.Parallel()

		httpLayer := fmt.Errorf("request failed: %w", &smugmug.RateLimitError{RetryAfter: 30 * time.Second})
		assert.True(t, smugmug.IsRateLimited(httpLayer))

		envelopeLayer := &smugmug.APIError{Code: smugmug.CodeTooManyRequests, Message: "Too Many Requests"}
		assert.True(t, smugmug.IsRateLimited(envelopeLayer))

		assert.False(t, smugmug.IsRateLimited(&smugmug.APIError{Code: smugmug.CodeBadRequest}))
	})
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not Found (code: 404)", (&smugmug.APIError{Code: 404, Message: "Not Found"}).Error())
	assert.Equal(t, "unknown status code 999: weird", (&smugmug.UnknownCodeError{Code: 999, Message: "weird"}).Error())
	assert.Equal(t, "rate limited: retry after 30s", (&smugmug.RateLimitError{RetryAfter: 30 * time.Second}).Error())
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &smugmug.TransportError{Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMalformedResponseError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid character '<'")
	err := &smugmug.MalformedResponseError{Err: cause, Body: []byte("<html>")}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed response")
}
