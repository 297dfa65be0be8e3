package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", url: "/events", wantPage: 1, wantLimit: 10},
		{name: "explicit values", url: "/events?page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "limit capped", url: "/events?limit=1000", wantPage: 1, wantLimit: 100},
		{name: "zero and negative fall back", url: "/events?page=0&limit=-5", wantPage: 1, wantLimit: 10},
		{name: "garbage falls back", url: "/events?page=abc&limit=xyz", wantPage: 1, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			got := ParsePagination(req)
			if got.Page != tt.wantPage {
				t.Errorf("page: expected %d, got %d", tt.wantPage, got.Page)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("limit: expected %d, got %d", tt.wantLimit, got.Limit)
			}
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  int
		total        int
		wantPages    int
		wantNext     bool
		wantPrevious bool
	}{
		{name: "first of two pages", page: 1, limit: 1, total: 2, wantPages: 2, wantNext: true, wantPrevious: false},
		{name: "last page", page: 2, limit: 10, total: 15, wantPages: 2, wantNext: false, wantPrevious: true},
		{name: "exact fit", page: 1, limit: 5, total: 5, wantPages: 1, wantNext: false, wantPrevious: false},
		{name: "empty result", page: 1, limit: 10, total: 0, wantPages: 0, wantNext: false, wantPrevious: false},
		{name: "page beyond range", page: 9, limit: 10, total: 15, wantPages: 2, wantNext: false, wantPrevious: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantPages {
				t.Errorf("total pages: expected %d, got %d", tt.wantPages, meta.TotalPages)
			}
			if meta.HasNextPage != tt.wantNext {
				t.Errorf("has next page: expected %v, got %v", tt.wantNext, meta.HasNextPage)
			}
			if meta.HasPreviousPage != tt.wantPrevious {
				t.Errorf("has previous page: expected %v, got %v", tt.wantPrevious, meta.HasPreviousPage)
			}
			if meta.Total != tt.total {
				t.Errorf("total: expected %d, got %d", tt.total, meta.Total)
			}
		})
	}
}
