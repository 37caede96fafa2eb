package smugmug_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Decode(t *testing.T) {
	t.Parallel()

	t.Run("with payload", func(t *testing.T) {
		t.Parallel()

		body := `{"Code": 200, "Message": "Ok", "Response": {"User": {"Uri": "/api/v2/user/demo", "NickName": "demo"}}}`

		var envelope smugmug.Envelope
		require.NoError(t, json.Unmarshal([]byte(body), &envelope))

		assert.Equal(t, 200, envelope.Code)
		assert.Equal(t, "Ok", envelope.Message)
		assert.NotNil(t, envelope.Response)
	})

	t.Run("payload absent", func(t *testing.T) {
		t.Parallel()

		body := `{"Code": 200, "Message": "Ok"}`

		var envelope smugmug.Envelope
		require.NoError(t, json.Unmarshal([]byte(body), &envelope))

		assert.Nil(t, envelope.Response)
	})
}

func TestPages_HasNextPage(t *testing.T) {
	t.Parallel()

	assert.False(t, (*smugmug.Pages)(nil).HasNextPage())
	assert.False(t, (&smugmug.Pages{}).HasNextPage())
	assert.True(t, (&smugmug.Pages{NextPage: "/api/v2/node/abc!children?start=26"}).HasNextPage())
}

func TestRateLimit_Accessors(t *testing.T) {
	t.Parallel()

	t.Run("nil snapshot", func(t *testing.T) {
		t.Parallel()

		var limit *smugmug.RateLimit

		assert.False(t, limit.IsValid())

		_, ok := limit.Remaining()
		assert.False(t, ok)

		_, ok = limit.WindowReset()
		assert.False(t, ok)

		_, ok = limit.RetryAfter()
		assert.False(t, ok)

		_, ok = limit.ResumeAfter()
		assert.False(t, ok)
	})

	t.Run("remaining only", func(t *testing.T) {
		t.Parallel()

		remaining := 5
		limit := &smugmug.RateLimit{RemainingRequests: &remaining, ObservedAt: time.Now()}

		assert.True(t, limit.IsValid())

		got, ok := limit.Remaining()
		require.True(t, ok)
		assert.Equal(t, 5, got)

		_, ok = limit.RetryAfter()
		assert.False(t, ok)
	})

	t.Run("retry-after derives resume instant", func(t *testing.T) {
		t.Parallel()

		observed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		retryAfter := 30 * time.Second
		limit := &smugmug.RateLimit{RetryAfterSeconds: &retryAfter, ObservedAt: observed}

		assert.True(t, limit.IsValid())

		resume, ok := limit.ResumeAfter()
		require.True(t, ok)
		assert.Equal(t, observed.Add(30*time.Second), resume)
	})

	t.Run("reset alone is not valid", func(t *testing.T) {
		t.Parallel()

		reset := time.Now().Add(time.Hour)
		limit := &smugmug.RateLimit{ResetAt: &reset, ObservedAt: time.Now()}

		assert.False(t, limit.IsValid())

		got, ok := limit.WindowReset()
		require.True(t, ok)
		assert.Equal(t, reset, got)
	})
}

func TestNodeType_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected smugmug.NodeType
	}{
		{`"Album"`, smugmug.NodeTypeAlbum},
		{`"Folder"`, smugmug.NodeTypeFolder},
		{`"Page"`, smugmug.NodeTypePage},
		{`"System Folder"`, smugmug.NodeTypeSystemFolder},
		{`"System Page"`, smugmug.NodeTypeSystemPage},
		{`"SomethingNew"`, smugmug.NodeTypeUnknown},
		{`""`, smugmug.NodeTypeUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			var nodeType smugmug.NodeType
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &nodeType))
			assert.Equal(t, tt.expected, nodeType)
		})
	}
}

func TestPrivacyLevel_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected smugmug.PrivacyLevel
	}{
		{`"Public"`, smugmug.PrivacyPublic},
		{`"Unlisted"`, smugmug.PrivacyUnlisted},
		{`"Private"`, smugmug.PrivacyPrivate},
		{`"Secret"`, smugmug.PrivacyUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			var privacy smugmug.PrivacyLevel
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &privacy))
			assert.Equal(t, tt.expected, privacy)
		})
	}
}

func TestNode_NodeID(t *testing.T) {
	t.Parallel()

	node := &smugmug.Node{URI: "/api/v2/node/XWx8t"}
	assert.Equal(t, "XWx8t", node.NodeID())

	assert.Empty(t, (&smugmug.Node{}).NodeID())
}

func TestNode_DecodesDates(t *testing.T) {
	t.Parallel()

	body := `{
		"Uri": "/api/v2/node/XWx8t",
		"Name": "Vacation",
		"Type": "Folder",
		"Privacy": "Public",
		"HasChildren": true,
		"DateAdded": "2023-04-05T06:07:08+00:00",
		"Uris": {"ChildNodes": "/api/v2/node/XWx8t!children"}
	}`

	var node smugmug.Node
	require.NoError(t, json.Unmarshal([]byte(body), &node))

	assert.Equal(t, smugmug.NodeTypeFolder, node.Type)
	assert.Equal(t, smugmug.PrivacyPublic, node.Privacy)
	assert.True(t, node.HasChildren)
	require.NotNil(t, node.DateAdded)
	assert.Equal(t, 2023, node.DateAdded.Year())
	assert.Equal(t, "/api/v2/node/XWx8t!children", node.Uris.ChildNodes)
}
