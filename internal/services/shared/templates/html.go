package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HTMLWriter writes markup for hand-built components. The first write error
// is kept and later writes are skipped.
type HTMLWriter struct {
	w   io.Writer
	err error
}

// NewHTMLWriter wraps w.
func NewHTMLWriter(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

// Raw writes trusted markup as-is.
func (h *HTMLWriter) Raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// Text writes escaped text content.
func (h *HTMLWriter) Text(value string) {
	h.Raw(templ.EscapeString(value))
}

// Attr writes ` name="value"` with value escaped.
func (h *HTMLWriter) Attr(name string, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes a boolean attribute when on is true.
func (h *HTMLWriter) AttrIf(on bool, name string) {
	if on {
		h.Raw(" " + name)
	}
}

// Open writes an opening tag with the given class list.
func (h *HTMLWriter) Open(tag string, classes ...string) {
	h.Raw("<" + tag)
	if class := strings.TrimSpace(strings.Join(classes, " ")); class != "" {
		h.Attr("class", class)
	}
	h.Raw(">")
}

// Close writes a closing tag.
func (h *HTMLWriter) Close(tag string) {
	h.Raw("</" + tag + ">")
}

// Render renders a child component in place. Nil components are skipped.
func (h *HTMLWriter) Render(ctx context.Context, component templ.Component) {
	if h.err != nil || component == nil {
		return
	}
	h.err = component.Render(ctx, h.w)
}

// Err returns the first write error.
func (h *HTMLWriter) Err() error {
	return h.err
}
