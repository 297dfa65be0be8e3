package helpers

import (
	"net/http"
	"strconv"

	"eventregistry/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination reads page and limit from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	limit := DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > MaxLimit {
				limit = MaxLimit
			}
		}
	}
	return domain.PaginationParams{Page: page, Limit: limit}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Total           int  `json:"total"`
	TotalPages      int  `json:"total_pages"`
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// EventParticipantsMeta extends PaginationMeta with the event's remaining
// capacity at query time.
// swagger:model EventParticipantsMeta
type EventParticipantsMeta struct {
	PaginationMeta
	RemainingCapacity int `json:"remaining_capacity"`
}

// NewPaginationMeta builds PaginationMeta from the current page, limit, and total count.
// TotalPages is computed as ceiling(total / limit); if limit is 0, TotalPages is 0.
func NewPaginationMeta(page, limit, total int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationMeta{
		Total:           total,
		TotalPages:      totalPages,
		Page:            page,
		Limit:           limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
