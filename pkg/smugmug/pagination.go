package smugmug

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// PageFetcher fetches one page of a collection. pageURL is empty for
// the first request, where query carries the caller's filters; on
// subsequent requests pageURL is the cursor advertised by the previous
// page and query is nil.
type PageFetcher[T any] func(ctx context.Context, pageURL string, query url.Values) ([]T, *Pages, error)

// Iterator walks a paginated collection lazily. Pages are fetched only
// when consumption reaches the end of the buffered page, so a caller
// that stops early never causes requests past the page it stopped in.
type Iterator[T any] struct {
	ctx       context.Context
	fetch     PageFetcher[T]
	query     url.Values
	requested int

	buffer  []T
	pos     int
	nextURL string
	started bool
	done    bool
}

// NewIterator creates an iterator over a paginated collection.
// pageSize is the per-page item count the query asks for; it drives the
// short-page optimization that skips the trailing empty request.
func NewIterator[T any](ctx context.Context, fetch PageFetcher[T], query url.Values, pageSize int) *Iterator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Iterator[T]{
		ctx:       ctx,
		fetch:     fetch,
		query:     query,
		requested: pageSize,
	}
}

// HasNext returns true if more items may be available. It never issues
// a request itself.
func (it *Iterator[T]) HasNext() bool {
	if it.pos < len(it.buffer) {
		return true
	}

	if !it.started {
		return true
	}

	return !it.done
}

// Next returns the next item, fetching the next page when the buffered
// one is exhausted. Returns ErrNoMoreItems past the end.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	for it.pos >= len(it.buffer) {
		if it.started && it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetchNextPage()
		if err != nil {
			return zero, err
		}
	}

	item := it.buffer[it.pos]
	it.pos++

	return item, nil
}

// All fetches and returns all remaining items.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return nil, err
		}

		items = append(items, item)
	}
}

// ForEach applies fn to each remaining item, stopping on the first
// error fn returns.
func (it *Iterator[T]) ForEach(fn func(item T) error) error {
	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// fetchNextPage pulls the next page into the buffer and updates the
// termination state from the response cursor.
func (it *Iterator[T]) fetchNextPage() error {
	var (
		items []T
		pages *Pages
		err   error
	)

	if !it.started {
		items, pages, err = it.fetch(it.ctx, "", it.query)
	} else {
		items, pages, err = it.fetch(it.ctx, it.nextURL, nil)
	}

	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	it.started = true
	it.buffer = items
	it.pos = 0
	it.nextURL = ""

	if pages.HasNextPage() {
		it.nextURL = pages.NextPage
	} else {
		// Absent cursor is the authoritative end of the collection.
		it.done = true

		return nil
	}

	// Short page with a cursor still present: the collection is known
	// to be exhausted, so skip the trailing request.
	requested := it.requested
	if pages.RequestedCount > 0 {
		requested = pages.RequestedCount
	}

	if len(items) < requested {
		it.done = true
	}

	return nil
}

// PaginationOptions controls bulk page fetching.
type PaginationOptions struct {
	// PageSize: per-page item count hint for the short-page check.
	PageSize int
	// MaxPages: stop after this many pages. 0 means no limit.
	MaxPages int
}

// PageResult carries one fetched page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Pages *Pages
	Err   error
}

// FetchAllPages eagerly collects every item of a paginated collection.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], query url.Values, options *PaginationOptions) ([]T, error) {
	var (
		all     []T
		pageURL string
	)

	pageSize := DefaultPageSize
	maxPages := 0

	if options != nil {
		if options.PageSize > 0 {
			pageSize = options.PageSize
		}

		maxPages = options.MaxPages
	}

	for page := 1; ; page++ {
		items, pages, err := fetch(ctx, pageURL, query)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		all = append(all, items...)
		query = nil

		if !pages.HasNextPage() {
			return all, nil
		}

		if maxPages > 0 && page >= maxPages {
			return all, nil
		}

		requested := pageSize
		if pages.RequestedCount > 0 {
			requested = pages.RequestedCount
		}

		if len(items) < requested {
			return all, nil
		}

		pageURL = pages.NextPage
	}
}

// StreamPages delivers pages over a channel as they are fetched. The
// channel is unbuffered, so production is paced by consumption. The
// channel closes after the last page, the first error, or context
// cancellation.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], query url.Values, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	pageSize := DefaultPageSize
	maxPages := 0

	if options != nil {
		if options.PageSize > 0 {
			pageSize = options.PageSize
		}

		maxPages = options.MaxPages
	}

	go func() {
		defer close(results)

		pageURL := ""

		for page := 1; ; page++ {
			items, pages, err := fetch(ctx, pageURL, query)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			query = nil

			select {
			case results <- PageResult[T]{Items: items, Pages: pages}:
			case <-ctx.Done():
				return
			}

			if !pages.HasNextPage() {
				return
			}

			if maxPages > 0 && page >= maxPages {
				return
			}

			requested := pageSize
			if pages.RequestedCount > 0 {
				requested = pages.RequestedCount
			}

			if len(items) < requested {
				return
			}

			pageURL = pages.NextPage
		}
	}()

	return results
}
