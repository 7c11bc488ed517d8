package htmx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
)

func staticComponent(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func htmxRequest(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(HeaderRequest, "true")
	return r
}

func TestIsHTMXRequest(t *testing.T) {
	if IsHTMXRequest(nil) {
		t.Fatal("IsHTMXRequest(nil) = true, want false")
	}
	if IsHTMXRequest(httptest.NewRequest(http.MethodGet, "/users", nil)) {
		t.Fatal("plain request reported as htmx")
	}
	if !IsHTMXRequest(htmxRequest("/users")) {
		t.Fatal("htmx request not detected")
	}
}

func TestTitleTag(t *testing.T) {
	if got, want := TitleTag(`Users <Admin>`), "<title>Users &lt;Admin&gt;</title>"; got != want {
		t.Fatalf("TitleTag = %q, want %q", got, want)
	}
	if got := TitleTag("  "); got != "" {
		t.Fatalf("blank title = %q, want empty", got)
	}
}

func TestRenderPage(t *testing.T) {
	const page = `<html><head><title>Users | Admin</title></head><body><nav>x</nav><main class="p-6"><p>body</p></main></body></html>`
	tests := []struct {
		name     string
		page     string
		htmx     bool
		title    string
		wantBody string
	}{
		{name: "browser gets full page", page: page, title: "Users", wantBody: page},
		{name: "htmx gets main with title", page: page, htmx: true, title: "Users | Admin", wantBody: "<title>Users | Admin</title><p>body</p>"},
		{name: "htmx without title", page: page, htmx: true, wantBody: "<p>body</p>"},
		{name: "htmx keeps title inside main", page: `<main><title>Own</title><p>x</p></main>`, htmx: true, title: "Other", wantBody: "<title>Own</title><p>x</p>"},
		{name: "htmx without main sends page", page: `<p>bare</p>`, htmx: true, title: "T", wantBody: "<title>T</title><p>bare</p>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tc.htmx {
				r = htmxRequest("/users")
			}
			w := httptest.NewRecorder()
			RenderPage(w, r, staticComponent(tc.page), tc.title)
			if got := w.Body.String(); got != tc.wantBody {
				t.Fatalf("body = %q, want %q", got, tc.wantBody)
			}
			if got := w.Header().Get("Vary"); got != HeaderRequest {
				t.Fatalf("Vary = %q, want %q", got, HeaderRequest)
			}
		})
	}
}

func TestRenderPageRenderError(t *testing.T) {
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
	w := httptest.NewRecorder()
	RenderPage(w, htmxRequest("/users"), failing, "T")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestRenderFragment(t *testing.T) {
	w := httptest.NewRecorder()
	RenderFragment(w, htmxRequest("/users/table"), staticComponent(`<div id="users-table"></div>`))
	if got := w.Body.String(); got != `<div id="users-table"></div>` {
		t.Fatalf("body = %q", got)
	}
	RenderFragment(httptest.NewRecorder(), htmxRequest("/"), nil)
}

func TestRedirect(t *testing.T) {
	t.Run("htmx_uses_header", func(t *testing.T) {
		w := httptest.NewRecorder()
		Redirect(w, htmxRequest("/users"), "http://home.example.com/")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get(HeaderRedirect); got != "http://home.example.com/" {
			t.Fatalf("HX-Redirect = %q", got)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("browser_uses_location", func(t *testing.T) {
		w := httptest.NewRecorder()
		Redirect(w, httptest.NewRequest(http.MethodGet, "/users", nil), "http://home.example.com/")

		if w.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
		}
		if got := w.Header().Get("Location"); got != "http://home.example.com/" {
			t.Fatalf("Location = %q", got)
		}
	})
}

func TestRetargetAndNoSwap(t *testing.T) {
	w := httptest.NewRecorder()
	Retarget(w, "#users-table", "innerHTML")
	if got := w.Header().Get(HeaderRetarget); got != "#users-table" {
		t.Fatalf("HX-Retarget = %q", got)
	}
	if got := w.Header().Get(HeaderReswap); got != "innerHTML" {
		t.Fatalf("HX-Reswap = %q", got)
	}

	Retarget(w, " ", "outerHTML")
	if got := w.Header().Get(HeaderReswap); got != "innerHTML" {
		t.Fatalf("blank selector should not change HX-Reswap, got %q", got)
	}

	NoSwap(w)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}
