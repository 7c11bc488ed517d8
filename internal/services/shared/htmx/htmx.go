// Package htmx implements the server side of the HTMX request protocol.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HTMX request and response headers.
const (
	HeaderRequest  = "HX-Request"
	HeaderRedirect = "HX-Redirect"
	HeaderRetarget = "HX-Retarget"
	HeaderReswap   = "HX-Reswap"
)

const contentTypeHTML = "text/html; charset=utf-8"

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HeaderRequest), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Redirect sends the client to target. HTMX requests get an HX-Redirect
// header so the browser performs a full navigation instead of swapping the
// redirect target into the current fragment.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if w == nil {
		return
	}
	if IsHTMXRequest(r) {
		w.Header().Set(HeaderRedirect, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Retarget overrides the element the response is swapped into.
func Retarget(w http.ResponseWriter, selector string, swap string) {
	if w == nil || strings.TrimSpace(selector) == "" {
		return
	}
	w.Header().Set(HeaderRetarget, selector)
	if swap = strings.TrimSpace(swap); swap != "" {
		w.Header().Set(HeaderReswap, swap)
	}
}

// NoSwap answers an HTMX request without changing the page.
func NoSwap(w http.ResponseWriter) {
	if w == nil {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenderFragment renders a component as an HTMX fragment response.
func RenderFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if fragment == nil {
		return
	}
	templ.Handler(fragment).ServeHTTP(w, r)
}

// RenderPage renders page for a browser navigation. For HTMX navigation only
// the contents of page's <main> element are sent, preceded by title so the
// document title still changes.
func RenderPage(w http.ResponseWriter, r *http.Request, page templ.Component, title string) {
	if page == nil {
		return
	}
	w.Header().Add("Vary", HeaderRequest)
	if !IsHTMXRequest(r) {
		templ.Handler(page).ServeHTTP(w, r)
		return
	}

	var buf bytes.Buffer
	if err := page.Render(r.Context(), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	body, ok := mainContent(buf.Bytes())
	if !ok {
		body = buf.Bytes()
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	if !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		_, _ = w.Write([]byte(TitleTag(title)))
	}
	_, _ = w.Write(body)
}

// mainContent returns what sits between <main ...> and </main>.
func mainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openEnd := bytes.IndexByte(body[start:], '>')
	if openEnd < 0 {
		return nil, false
	}
	contentStart := start + openEnd + 1
	end := bytes.Index(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
