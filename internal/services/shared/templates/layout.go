// Package templates holds page chrome shared by server-rendered screens.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/useradmin/internal/services/shared/i18nhttp"
)

const (
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"
	daisyUICSSURL = "https://cdn.jsdelivr.net/npm/daisyui@4.12.23/dist/full.min.css"
	tailwindCDN   = "https://cdn.tailwindcss.com"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// LayoutOptions configures the page chrome.
type LayoutOptions struct {
	Title         string
	Lang          string
	AppName       string
	Heading       string
	Breadcrumbs   []BreadcrumbItem
	Languages     []i18nhttp.LanguageOption
	LanguageLabel string
	// HeadingAction renders next to the heading when set.
	HeadingAction templ.Component
}

// Layout renders a full HTML document around body. The body is placed in
// <main> so HTMX navigation can swap only the page content.
func Layout(options LayoutOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		lang := strings.TrimSpace(options.Lang)
		if lang == "" {
			lang = "en"
		}
		h.Raw("<!doctype html><html")
		h.Attr("lang", lang)
		h.Raw(` data-theme="light"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw("<title>")
		h.Text(ComposePageTitle(options.Title, options.AppName))
		h.Raw("</title>")
		h.Raw(`<link rel="stylesheet"`)
		h.Attr("href", daisyUICSSURL)
		h.Raw(`><script`)
		h.Attr("src", tailwindCDN)
		h.Raw(`></script><script`)
		h.Attr("src", htmxScriptURL)
		h.Raw(`></script></head><body class="min-h-screen bg-base-200">`)

		h.Raw(`<header class="navbar bg-base-100 shadow-sm"><div class="flex-1"><span class="text-lg font-semibold px-2">`)
		h.Text(options.AppName)
		h.Raw(`</span></div>`)
		renderLanguageMenu(h, options)
		h.Raw(`</header>`)

		h.Raw(`<main class="mx-auto max-w-5xl p-6">`)
		renderBreadcrumbs(h, options.Breadcrumbs)
		if heading := strings.TrimSpace(options.Heading); heading != "" {
			h.Raw(`<div class="mb-5 flex items-center justify-between gap-3"><h1 class="mb-0 text-2xl font-bold">`)
			h.Text(heading)
			h.Raw(`</h1>`)
			h.Render(ctx, options.HeadingAction)
			h.Raw(`</div>`)
		}
		h.Render(ctx, body)
		h.Raw(`</main></body></html>`)
		return h.Err()
	})
}

// ComposePageTitle appends the app name to title unless it already ends with it.
func ComposePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return title
	}
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, "| "+appName) {
		return title
	}
	if trimmed, ok := strings.CutSuffix(title, " - "+appName); ok {
		title = strings.TrimSpace(trimmed)
	}
	return title + " | " + appName
}

// Loading renders the shared loading ring.
func Loading() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="loading loading-ring loading-md"></span>`)
		return err
	})
}

// LazyLoad renders a placeholder that fetches url as soon as it is inserted.
// indicatorID names the element HTMX shows while the request is in flight.
func LazyLoad(id string, url string, indicatorID string, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw(`<div`)
		h.Attr("id", id)
		h.Attr("hx-get", url)
		h.Raw(` hx-trigger="load" hx-swap="outerHTML"`)
		if indicatorID != "" {
			h.Attr("hx-indicator", "#"+indicatorID)
		}
		h.Raw(`>`)
		h.Render(ctx, LoadingIndicator(indicatorID, message, true))
		h.Raw(`</div>`)
		return h.Err()
	})
}

// LoadingIndicator renders a loading ring with a screen-reader message. When
// visible is false the indicator only shows during HTMX requests.
func LoadingIndicator(id string, message string, visible bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTMLWriter(w)
		h.Raw(`<div`)
		if id != "" {
			h.Attr("id", id)
		}
		class := "flex items-center gap-2 py-4"
		if !visible {
			class += " htmx-indicator"
		}
		h.Attr("class", class)
		h.Raw(` role="status">`)
		h.Render(ctx, Loading())
		h.Raw(`<span class="sr-only">`)
		h.Text(message)
		h.Raw(`</span></div>`)
		return h.Err()
	})
}

func renderBreadcrumbs(h *HTMLWriter, items []BreadcrumbItem) {
	if len(items) == 0 {
		return
	}
	h.Raw(`<div class="breadcrumbs text-sm mb-2"><ul>`)
	for _, item := range items {
		if strings.TrimSpace(item.URL) == "" {
			h.Raw(`<li>`)
			h.Text(item.Label)
			h.Raw(`</li>`)
			continue
		}
		h.Raw(`<li><a`)
		h.Attr("href", item.URL)
		h.Raw(`>`)
		h.Text(item.Label)
		h.Raw(`</a></li>`)
	}
	h.Raw(`</ul></div>`)
}

func renderLanguageMenu(h *HTMLWriter, options LayoutOptions) {
	if len(options.Languages) == 0 {
		return
	}
	h.Raw(`<nav class="flex-none"`)
	h.Attr("aria-label", options.LanguageLabel)
	h.Raw(`><ul class="menu menu-horizontal px-1">`)
	for _, option := range options.Languages {
		h.Raw(`<li><a`)
		h.Attr("href", option.URL)
		h.Attr("hreflang", option.Tag)
		if option.Active {
			h.Raw(` class="active" aria-current="true"`)
		}
		h.Raw(`>`)
		h.Text(option.Label)
		h.Raw(`</a></li>`)
	}
	h.Raw(`</ul></nav>`)
}
