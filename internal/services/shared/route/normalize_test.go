package route

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			path:     "/users",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash",
			path:     "/users/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/users",
		},
		{
			name:     "trailing slash keeps query",
			path:     "/users/table/?page=2&page_size=5",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/users/table?page=2&page_size=5",
		},
		{
			name:     "root path",
			path:     "/",
			wantOK:   false,
			wantCode: 200,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestRedirectTrailingSlashNilInputs(t *testing.T) {
	t.Parallel()

	if RedirectTrailingSlash(nil, httptest.NewRequest(http.MethodGet, "/users/", nil)) {
		t.Fatal("expected false for nil writer")
	}
	if RedirectTrailingSlash(httptest.NewRecorder(), nil) {
		t.Fatal("expected false for nil request")
	}
}

func TestSplitPathParts(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"":            {},
		"/":           {},
		"42/edit":     {"42", "edit"},
		"/42//delete": {"42", "delete"},
		" 7 / edit ":  {"7", "edit"},
	}
	for input, want := range tests {
		if got := SplitPathParts(input); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitPathParts(%q) = %#v, want %#v", input, got, want)
		}
	}
}
