package components

import (
	"context"

	"ticketvue/internal/store"

	"github.com/a-h/templ"
)

// Banner shows the session message. Self-clearing banners poll once after
// the timeout so the page drops them without a reload.
func Banner(banner *store.Banner, autoRefresh bool) templ.Component {
	return Func(func(ctx context.Context, b *Builder) {
		if banner == nil {
			b.Raw(`<div id="banner"></div>`)
			return
		}

		b.Raw(`<div id="banner" role="alert"`)
		b.Attr("class", "banner banner-"+string(banner.Kind))
		if autoRefresh && banner.Kind == store.BannerSuccess {
			b.Raw(` hx-get="/banner" hx-trigger="load delay:3100ms" hx-swap="outerHTML"`)
		}
		b.Raw(`>`)
		if banner.Kind == store.BannerSuccess {
			b.Raw(`&#10003; `)
		} else {
			b.Raw(`&#10007; `)
		}
		b.Text(banner.Text)
		b.Raw(`</div>`)
	})
}
