// ABOUTME: Pagination utilities for video pages
// ABOUTME: Slices an ordered video list into a FeedPage honoring page, limit and offset

package catalog

import "reels-app-api/core/domain"

// Paginate returns the page of items described by req.
// Items are copied so callers cannot mutate the backing list.
func Paginate(items []domain.VideoItem, req domain.PageRequest) *domain.FeedPage {
	// Handle invalid page
	if req.Page < 1 {
		req.Page = 1
	}

	// Handle invalid limit
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}

	total := len(items)
	page := &domain.FeedPage{
		Items:      []domain.VideoItem{},
		Page:       req.Page,
		TotalPages: (total + req.Limit - 1) / req.Limit,
	}

	start := req.Start()
	if start >= total {
		return page
	}

	end := start + req.Limit
	if end > total {
		end = total
	}

	page.Items = make([]domain.VideoItem, 0, end-start)
	for _, item := range items[start:end] {
		page.Items = append(page.Items, item.Clone())
	}
	page.HasMore = end < total

	return page
}
