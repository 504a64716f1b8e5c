package components

import (
	"context"
	"strconv"

	"ticketvue/internal/store"

	"github.com/a-h/templ"
)

// AppTarget is the element every storefront action swaps
const AppTarget = "#app"

// Header is the storefront navigation bar
func Header(state store.State) templ.Component {
	return Func(func(ctx context.Context, b *Builder) {
		b.Raw(`<nav class="nav container">`)
		b.ActionButton(ctx, "/nav/home", AppTarget, "TicketVue", "btn-link", false)

		b.Raw(`<div>`)
		b.Raw(`<a href="/bookings" class="btn-link">My bookings</a> `)
		b.ActionButton(ctx, "/nav/cart", AppTarget, "Cart ("+strconv.Itoa(len(state.Cart))+")", "btn-link", false)
		if state.SignedIn() {
			b.Raw(` <span class="muted">`)
			b.Text(state.User.Name)
			b.Raw(`</span> `)
			b.ActionButton(ctx, "/auth/signout", AppTarget, "Sign out", "btn", false)
		} else {
			b.Raw(` `)
			b.ActionButton(ctx, "/auth/open", AppTarget, "Sign in", "btn", false)
		}
		b.Raw(`</div></nav>`)
	})
}
