package screen

import (
	"net/url"
	"testing"
)

func TestNewPaginationNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 0, wantSize: 10},
		{name: "valid", page: 3, size: 25, wantPage: 3, wantSize: 25},
		{name: "negative page", page: -2, size: 5, wantPage: 0, wantSize: 5},
		{name: "unknown size", page: 1, size: 7, wantPage: 1, wantSize: 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewPagination(tc.page, tc.size)
			if got.Page != tc.wantPage || got.PageSize != tc.wantSize {
				t.Fatalf("NewPagination(%d, %d) = %+v", tc.page, tc.size, got)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	got := ParsePagination(url.Values{"page": {"2"}, "page_size": {"5"}})
	if got.Page != 2 || got.PageSize != 5 {
		t.Fatalf("pagination = %+v", got)
	}
	got = ParsePagination(url.Values{"page": {"abc"}, "page_size": {"1000"}})
	if got.Page != 0 || got.PageSize != DefaultPageSize {
		t.Fatalf("pagination = %+v", got)
	}
}

func TestPaginationSkipLimit(t *testing.T) {
	p := NewPagination(0, 10)
	if p.Skip() != 0 || p.Limit() != 10 {
		t.Fatalf("skip/limit = %d/%d", p.Skip(), p.Limit())
	}
	p = p.WithPage(1)
	if p.Skip() != 10 || p.Limit() != 10 {
		t.Fatalf("skip/limit = %d/%d, want 10/10", p.Skip(), p.Limit())
	}
	p = p.WithPageSize(25)
	if p.Page != 1 || p.Skip() != 25 || p.Limit() != 25 {
		t.Fatalf("page size change = %+v skip %d", p, p.Skip())
	}
}

func TestPaginationRangeAndNavigation(t *testing.T) {
	p := NewPagination(0, 10)
	from, to := p.Range(42)
	if from != 1 || to != 10 {
		t.Fatalf("range = %d-%d, want 1-10", from, to)
	}
	if p.HasPrevious() || !p.HasNext(42) {
		t.Fatalf("first page navigation wrong")
	}

	last := p.WithPage(4)
	from, to = last.Range(42)
	if from != 41 || to != 42 {
		t.Fatalf("range = %d-%d, want 41-42", from, to)
	}
	if !last.HasPrevious() || last.HasNext(42) {
		t.Fatalf("last page navigation wrong")
	}

	from, to = p.Range(0)
	if from != 0 || to != 0 {
		t.Fatalf("empty range = %d-%d", from, to)
	}
}

func TestPaginationQuery(t *testing.T) {
	q := NewPagination(3, 25).Query()
	if q.Get("page") != "3" || q.Get("page_size") != "25" {
		t.Fatalf("query = %v", q)
	}
}

func TestPageSizeOptionsIsCopy(t *testing.T) {
	options := PageSizeOptions()
	options[0] = 99
	if PageSizeOptions()[0] != 5 {
		t.Fatalf("PageSizeOptions should return a copy")
	}
}
