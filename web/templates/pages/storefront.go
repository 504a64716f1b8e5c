package pages

import (
	"context"
	"strconv"

	"ticketvue/internal/models"
	"ticketvue/internal/store"
	"ticketvue/web/templates/components"

	"github.com/a-h/templ"
)

// Storefront is the full document for the current navigation state
func Storefront(state store.State) templ.Component {
	return components.Layout("TicketVue", App(state))
}

// App is the swappable storefront region
func App(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<div id="app">`)
		b.Component(ctx, components.Header(state))
		b.Raw(`<main class="container">`)
		b.Component(ctx, components.Banner(state.Banner, true))

		switch state.Page {
		case store.PageEventDetail:
			b.Component(ctx, EventDetail(state))
		case store.PageCart:
			b.Component(ctx, Cart(state))
		default:
			b.Component(ctx, Home(state))
		}

		b.Raw(`</main>`)
		b.Component(ctx, components.AuthModal(state))
		b.Raw(`</div>`)
	})
}

// Home is the catalog with its live search box
func Home(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<section><h1>Upcoming events</h1>`)
		b.Raw(`<form method="get" action="/search">`)
		b.Raw(`<input type="search" name="q" placeholder="Search by name or location"`)
		b.Attr("value", state.Query)
		b.Raw(` hx-get="/search" hx-trigger="keyup changed delay:150ms, search" hx-target="#catalog-grid" hx-swap="outerHTML"></form>`)
		b.ActionButton(ctx, "/events/refresh", components.AppTarget, "Refresh", "btn-link", state.Loading)
		b.Component(ctx, CatalogGrid(state))
		b.Raw(`</section>`)
	})
}

// CatalogGrid lists the events matching the current query
func CatalogGrid(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<div id="catalog-grid">`)
		events := state.FilteredEvents()
		switch {
		case state.Loading:
			b.Raw(`<p class="muted">Loading events...</p>`)
		case len(events) == 0:
			b.Raw(`<p class="muted">No events found.</p>`)
		default:
			b.Raw(`<div class="grid">`)
			for _, event := range events {
				b.Component(ctx, components.EventCard(event, state.IsFavorite(event.ID.String())))
			}
			b.Raw(`</div>`)
		}
		b.Raw(`</div>`)
	})
}

// EventDetail shows the selected event with the quantity selector
func EventDetail(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.ActionButton(ctx, "/nav/home", components.AppTarget, "← Back to events", "btn-link", false)
		if state.Selected == nil {
			b.Raw(`<p class="muted">Event not found.</p>`)
			return
		}
		event := *state.Selected
		id := event.ID.String()

		b.Raw(`<article class="card"><h1>`)
		b.Text(event.Name)
		b.Raw(`</h1><p class="muted">`)
		b.Text(event.Location)
		b.Raw(` &middot; `)
		b.Text(event.DisplayDate())
		b.Raw(`</p><p>`)
		b.Text(event.DisplayDescription())
		b.Raw(`</p><p>`)
		b.Money(event.Price)
		b.Raw(` per ticket</p>`)
		if event.IsLowStock() {
			b.Raw(`<p class="warning">Only `)
			b.Text(strconv.Itoa(event.AvailableTickets))
			b.Raw(` tickets left!</p>`)
		}

		b.Raw(`<div class="quantity">`)
		quantityButton(ctx, b, "dec", "−")
		b.FormOpen(ctx, "/detail/quantity", components.AppTarget)
		b.Raw(`<input type="hidden" name="op" value="set"><input type="number" name="value" min="1" aria-label="Quantity"`)
		b.Attr("value", strconv.Itoa(state.DetailQuantity))
		b.Raw(` hx-post="/detail/quantity" hx-trigger="change" hx-target="#app" hx-swap="outerHTML" hx-include="closest form"></form>`)
		quantityButton(ctx, b, "inc", "+")
		b.Raw(`</div><p>Total: `)
		b.Money(state.DetailTotal())
		b.Raw(`</p>`)

		b.FormOpen(ctx, "/cart/add", components.AppTarget)
		b.Raw(`<input type="hidden" name="event_id"`)
		b.Attr("value", id)
		b.Raw(`><button type="submit" class="btn">Add to cart</button></form>`)
		if state.JustAdded {
			b.Raw(`<p class="muted" role="status">&#10003; Added to cart</p>`)
		}

		label := "Add to favorites"
		if state.IsFavorite(id) {
			label = "Remove from favorites"
		}
		b.ActionButton(ctx, "/events/"+id+"/favorite", components.AppTarget, label, "btn-link", false)
		b.Raw(`</article>`)
	})
}

func quantityButton(ctx context.Context, b *components.Builder, op, label string) {
	b.FormOpen(ctx, "/detail/quantity", components.AppTarget)
	b.Raw(`<input type="hidden" name="op"`)
	b.Attr("value", op)
	b.Raw(`><button type="submit" class="btn">`)
	b.Text(label)
	b.Raw(`</button></form>`)
}

// Cart lists the cart lines with subtotal, fee and total
func Cart(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.ActionButton(ctx, "/nav/home", components.AppTarget, "← Continue shopping", "btn-link", false)
		b.Raw(`<h1>Your cart</h1>`)
		if len(state.Cart) == 0 {
			b.Raw(`<p class="muted">Your cart is empty.</p>`)
			return
		}

		b.Raw(`<table><thead><tr><th>Event</th><th>Qty</th><th>Price</th><th></th></tr></thead><tbody>`)
		for _, item := range state.Cart {
			b.Raw(`<tr><td>`)
			b.Text(item.Event.Name)
			b.Raw(`</td><td>`)
			b.Text(strconv.Itoa(item.Quantity))
			b.Raw(`</td><td>`)
			b.Money(item.LineTotal())
			b.Raw(`</td><td>`)
			b.ActionButton(ctx, "/cart/items/"+item.ID+"/remove", components.AppTarget, "Remove", "btn-link", false)
			b.Raw(`</td></tr>`)
		}
		b.Raw(`</tbody></table>`)

		b.Raw(`<dl><dt>Subtotal</dt><dd>`)
		b.Money(state.Subtotal())
		b.Raw(`</dd><dt>Service fee (`)
		b.Text(models.FeeRate.Shift(2).String())
		b.Raw(`%)</dt><dd>`)
		b.Money(state.Fee())
		b.Raw(`</dd><dt>Total</dt><dd><strong>`)
		b.Money(state.Total())
		b.Raw(`</strong></dd></dl>`)

		label := "Checkout"
		if !state.SignedIn() {
			label = "Sign in to checkout"
		}
		b.ActionButton(ctx, "/checkout", components.AppTarget, label, "btn", state.Busy())
	})
}
