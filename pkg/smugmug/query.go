package smugmug

import (
	"net/url"
	"strconv"
)

// DefaultPageSize is the per-page item count requested when a caller
// does not specify one.
const DefaultPageSize = 25

// ChildrenParams filters and orders a child-node listing.
type ChildrenParams struct {
	// Count: items per page. Defaults to DefaultPageSize when 0.
	Count int
	// Type: restricts results to a node type. NodeTypeFilterAny (or
	// empty) requests all types and is omitted from the query.
	Type NodeTypeFilter
	// SortMethod: ordering key. SortMethodSortIndex (or empty) is the
	// API default and is omitted from the query.
	SortMethod SortMethod
	// SortDirection: ordering direction.
	SortDirection SortDirection
}

// NewChildrenParams creates params with default values.
func NewChildrenParams() *ChildrenParams {
	return &ChildrenParams{}
}

// WithCount sets the per-page item count.
func (p *ChildrenParams) WithCount(count int) *ChildrenParams {
	p.Count = count

	return p
}

// WithType restricts results to a node type.
func (p *ChildrenParams) WithType(filter NodeTypeFilter) *ChildrenParams {
	p.Type = filter

	return p
}

// WithSortMethod sets the ordering key.
func (p *ChildrenParams) WithSortMethod(method SortMethod) *ChildrenParams {
	p.SortMethod = method

	return p
}

// WithSortDirection sets the ordering direction.
func (p *ChildrenParams) WithSortDirection(direction SortDirection) *ChildrenParams {
	p.SortDirection = direction

	return p
}

// PageSize returns the effective per-page count.
func (p *ChildrenParams) PageSize() int {
	if p == nil || p.Count <= 0 {
		return DefaultPageSize
	}

	return p.Count
}

// ToValues converts the params to url.Values for the first page
// request. Cursor URLs for subsequent pages already embed them.
func (p *ChildrenParams) ToValues() url.Values {
	values := url.Values{}
	values.Set("count", strconv.Itoa(p.PageSize()))

	if p == nil {
		return values
	}

	if p.Type != "" && p.Type != NodeTypeFilterAny {
		values.Set("Type", string(p.Type))
	}

	if p.SortMethod != "" && p.SortMethod != SortMethodSortIndex {
		values.Set("SortMethod", string(p.SortMethod))
	}

	if p.SortDirection != "" {
		values.Set("SortDirection", string(p.SortDirection))
	}

	return values
}

// ImagesParams controls an album-image listing.
type ImagesParams struct {
	// Count: items per page. Defaults to DefaultPageSize when 0.
	Count int
}

// NewImagesParams creates params with default values.
func NewImagesParams() *ImagesParams {
	return &ImagesParams{}
}

// WithCount sets the per-page item count.
func (p *ImagesParams) WithCount(count int) *ImagesParams {
	p.Count = count

	return p
}

// PageSize returns the effective per-page count.
func (p *ImagesParams) PageSize() int {
	if p == nil || p.Count <= 0 {
		return DefaultPageSize
	}

	return p.Count
}

// ToValues converts the params to url.Values for the first page request.
func (p *ImagesParams) ToValues() url.Values {
	values := url.Values{}
	values.Set("count", strconv.Itoa(p.PageSize()))

	return values
}
