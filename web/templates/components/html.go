package components

import (
	"context"
	"io"

	"ticketvue/internal/middleware"

	"github.com/a-h/templ"
)

// Builder writes escaped HTML and keeps the first write error
type Builder struct {
	w   io.Writer
	err error
}

func NewBuilder(w io.Writer) *Builder {
	return &Builder{w: w}
}

// Raw writes trusted markup as is
func (b *Builder) Raw(parts ...string) {
	for _, p := range parts {
		if b.err != nil {
			return
		}
		_, b.err = io.WriteString(b.w, p)
	}
}

// Text writes escaped text
func (b *Builder) Text(s string) {
	b.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped
func (b *Builder) Attr(name, value string) {
	b.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// Component renders a child component in place
func (b *Builder) Component(ctx context.Context, c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(ctx, b.w)
}

func (b *Builder) Err() error {
	return b.err
}

// Func adapts a builder callback to a templ component
func Func(fn func(ctx context.Context, b *Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := NewBuilder(w)
		fn(ctx, b)
		return b.Err()
	})
}

// FormOpen starts a POST form that htmx submits and swaps into target.
// The CSRF token travels as a hidden field so the form also works without JS.
func (b *Builder) FormOpen(ctx context.Context, action, target string) {
	b.Raw(`<form method="post"`)
	b.Attr("action", action)
	b.Attr("hx-post", action)
	b.Attr("hx-target", target)
	b.Raw(` hx-swap="outerHTML">`)
	b.Raw(`<input type="hidden" name="csrf_token"`)
	b.Attr("value", middleware.GetCSRFToken(ctx))
	b.Raw(`>`)
}

// ActionButton is a one-button form
func (b *Builder) ActionButton(ctx context.Context, action, target, label, class string, disabled bool) {
	b.FormOpen(ctx, action, target)
	b.Raw(`<button type="submit"`)
	b.Attr("class", class)
	if disabled {
		b.Raw(` disabled`)
	}
	b.Raw(`>`)
	b.Text(label)
	b.Raw(`</button></form>`)
}
