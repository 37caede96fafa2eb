package smugmug_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/photoflow-io/smugmug/pkg/smugmug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID string
}

// pageServer serves canned pages keyed by cursor URL and counts fetches.
type pageServer struct {
	pages    map[string]pageData
	requests int
}

type pageData struct {
	items []testItem
	pages *smugmug.Pages
}

func (s *pageServer) fetch(_ context.Context, pageURL string, _ url.Values) ([]testItem, *smugmug.Pages, error) {
	s.requests++

	data, ok := s.pages[pageURL]
	if !ok {
		return nil, nil, fmt.Errorf("unexpected page request: %q", pageURL)
	}

	return data.items, data.pages, nil
}

func makeItems(from, count int) []testItem {
	items := make([]testItem, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, testItem{ID: fmt.Sprintf("item-%d", from+i)})
	}

	return items
}

func threePageServer() *pageServer {
	return &pageServer{
		pages: map[string]pageData{
			"": {
				items: makeItems(1, 25),
				pages: &smugmug.Pages{Total: 60, Count: 25, RequestedCount: 25, NextPage: "/page/2"},
			},
			"/page/2": {
				items: makeItems(26, 25),
				pages: &smugmug.Pages{Total: 60, Count: 25, RequestedCount: 25, NextPage: "/page/3"},
			},
			"/page/3": {
				items: makeItems(51, 10),
				pages: &smugmug.Pages{Total: 60, Count: 10, RequestedCount: 25},
			},
		},
	}
}

func TestIterator_All(t *testing.T) {
	t.Parallel()

	server := threePageServer()
	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Len(t, items, 60)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "item-26", items[25].ID)
	assert.Equal(t, "item-60", items[59].ID)
	assert.Equal(t, 3, server.requests)
}

func TestIterator_EarlyTermination(t *testing.T) {
	t.Parallel()

	server := threePageServer()
	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	for i := 0; i < 5; i++ {
		_, err := iterator.Next()
		require.NoError(t, err)
	}

	assert.Equal(t, 1, server.requests, "stopping after 5 items must not fetch past page 1")
}

func TestIterator_HasNext(t *testing.T) {
	t.Parallel()

	server := &pageServer{
		pages: map[string]pageData{
			"": {
				items: makeItems(1, 2),
				pages: &smugmug.Pages{Total: 3, Count: 2, RequestedCount: 2, NextPage: "/page/2"},
			},
			"/page/2": {
				items: makeItems(3, 1),
				pages: &smugmug.Pages{Total: 3, Count: 1, RequestedCount: 2},
			},
		},
	}

	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 2)

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	item1, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "item-1", item1.ID)
	assert.True(t, iterator.HasNext())

	item2, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "item-2", item2.ID)
	assert.True(t, iterator.HasNext())

	item3, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "item-3", item3.ID)
	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, smugmug.ErrNoMoreItems)
}

func TestIterator_MissingCursorTerminates(t *testing.T) {
	t.Parallel()

	// A full page without a NextPage cursor is the end of the
	// collection, even though the count heuristic alone would allow
	// another request.
	server := &pageServer{
		pages: map[string]pageData{
			"": {
				items: makeItems(1, 25),
				pages: &smugmug.Pages{Total: 25, Count: 25, RequestedCount: 25},
			},
		},
	}

	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Len(t, items, 25)
	assert.Equal(t, 1, server.requests)
}

func TestIterator_ShortPageSkipsTrailingRequest(t *testing.T) {
	t.Parallel()

	// The API may advertise a cursor on a short final page; the
	// iterator should not follow it just to receive an empty page.
	server := &pageServer{
		pages: map[string]pageData{
			"": {
				items: makeItems(1, 10),
				pages: &smugmug.Pages{Total: 10, Count: 10, RequestedCount: 25, NextPage: "/page/2"},
			},
		},
	}

	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Len(t, items, 10)
	assert.Equal(t, 1, server.requests)
}

func TestIterator_ForEach(t *testing.T) {
	t.Parallel()

	server := threePageServer()
	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	var collected []string

	err := iterator.ForEach(func(item testItem) error {
		collected = append(collected, item.ID)

		return nil
	})
	require.NoError(t, err)

	assert.Len(t, collected, 60)
	assert.Equal(t, "item-1", collected[0])
	assert.Equal(t, "item-60", collected[59])
}

func TestIterator_EmptyCollection(t *testing.T) {
	t.Parallel()

	server := &pageServer{
		pages: map[string]pageData{
			"": {
				items: nil,
				pages: &smugmug.Pages{Total: 0, Count: 0, RequestedCount: 25},
			},
		},
	}

	iterator := smugmug.NewIterator(context.Background(), server.fetch, nil, 25)

	items, err := iterator.All()
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Equal(t, 1, server.requests)
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	server := threePageServer()

	items, err := smugmug.FetchAllPages(context.Background(), server.fetch, nil, &smugmug.PaginationOptions{PageSize: 25})
	require.NoError(t, err)

	assert.Len(t, items, 60)
	assert.Equal(t, 3, server.requests)
}

func TestFetchAllPages_WithMaxPages(t *testing.T) {
	t.Parallel()

	server := threePageServer()

	items, err := smugmug.FetchAllPages(context.Background(), server.fetch, nil, &smugmug.PaginationOptions{
		PageSize: 25,
		MaxPages: 2,
	})
	require.NoError(t, err)

	assert.Len(t, items, 50)
	assert.Equal(t, 2, server.requests)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	server := threePageServer()
	results := smugmug.StreamPages(context.Background(), server.fetch, nil, &smugmug.PaginationOptions{PageSize: 25})

	var all []testItem

	pageCount := 0

	for result := range results {
		require.NoError(t, result.Err)

		all = append(all, result.Items...)
		pageCount++
	}

	assert.Equal(t, 3, pageCount)
	assert.Len(t, all, 60)
}

func TestStreamPages_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := threePageServer()
	ctx, cancel := context.WithCancel(context.Background())

	results := smugmug.StreamPages(ctx, server.fetch, nil, &smugmug.PaginationOptions{PageSize: 25})

	first := <-results
	require.NoError(t, first.Err)
	assert.Len(t, first.Items, 25)

	cancel()

	// The stream must wind down and close once the context is gone.
	for range results { //nolint:revive // draining
	}
}
