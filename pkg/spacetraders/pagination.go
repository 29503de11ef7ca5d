package spacetraders

import (
	"context"
	"net/url"
	"strconv"
)

// Pagination defaults applied when the caller leaves limit or page unset.
const (
	DefaultPageLimit = 10
	DefaultPage      = 1
)

// Paginator fills in missing pagination values. MaxLimit is a policy flag:
// zero passes limits through unchanged, a positive value caps them.
type Paginator struct {
	MaxLimit int
}

// Normalize returns the effective limit and page. Non-positive inputs count
// as absent.
func (p Paginator) Normalize(limit, page int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	if page <= 0 {
		page = DefaultPage
	}

	return limit, page
}

// NormalizePagination applies the default, non-clamping policy.
func NormalizePagination(limit, page int) (int, int) {
	return Paginator{}.Normalize(limit, page)
}

// PageParams are the optional pagination inputs of list operations.
type PageParams struct {
	Limit int
	Page  int
}

// NewPageParams creates page params for the given page and limit.
func NewPageParams(page, limit int) *PageParams {
	return &PageParams{Page: page, Limit: limit}
}

// ToValues normalizes the params with p and encodes them as query values.
// A nil receiver yields the defaults.
func (pp *PageParams) ToValues(p Paginator) url.Values {
	var limit, page int
	if pp != nil {
		limit, page = pp.Limit, pp.Page
	}

	limit, page = p.Normalize(limit, page)

	return url.Values{
		"limit": []string{strconv.Itoa(limit)},
		"page":  []string{strconv.Itoa(page)},
	}
}

// PageFunc fetches one page of a list operation.
type PageFunc[T any] func(ctx context.Context, params *PageParams) (*Page[T], error)

// FetchAllPages walks a list operation page by page, starting at page 1,
// until Meta.Total items were collected or the server returns an empty page.
func FetchAllPages[T any](ctx context.Context, limit int, fetch PageFunc[T]) ([]T, error) {
	var all []T

	for page := DefaultPage; ; page++ {
		err := ctx.Err()
		if err != nil {
			return all, err //nolint:wrapcheck // context errors are returned unchanged
		}

		result, err := fetch(ctx, &PageParams{Limit: limit, Page: page})
		if err != nil {
			return all, err
		}

		all = append(all, result.Items...)

		if len(result.Items) == 0 || len(all) >= result.Meta.Total {
			return all, nil
		}
	}
}
