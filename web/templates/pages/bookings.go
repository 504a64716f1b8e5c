package pages

import (
	"context"
	"strconv"

	"ticketvue/internal/models"
	"ticketvue/internal/store"
	"ticketvue/web/templates/components"

	"github.com/a-h/templ"
)

// BookingsTarget is the element every booking action swaps
const BookingsTarget = "#bookings-app"

// Bookings is the full booking page. confirm, when set, asks before
// cancelling that ticket.
func Bookings(state store.State, confirm *models.Ticket) templ.Component {
	return components.Layout("Ticket Booking System", BookingsApp(state, confirm))
}

// BookingsApp is the swappable booking region
func BookingsApp(state store.State, confirm *models.Ticket) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<div id="bookings-app" class="container">`)
		b.Raw(`<header><h1>Ticket Booking System</h1><p class="muted">Book and manage your event tickets</p>`)
		b.Raw(`<a href="/" class="btn-link">Browse events</a></header>`)
		b.Component(ctx, components.Banner(state.Banner, true))
		if confirm != nil {
			b.Component(ctx, DeleteConfirm(*confirm, state.Busy()))
		}
		b.Component(ctx, BookingForm(state))
		b.Component(ctx, TicketsList(state))
		b.Raw(`</div>`)
	})
}

// BookingForm is the create form with inline errors and the live total
func BookingForm(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		form, errs := state.BookingForm, state.BookingErrors

		b.Raw(`<section class="card"><h2>Book a ticket</h2>`)
		b.FormOpen(ctx, "/bookings", BookingsTarget)
		b.Raw(`<div hx-post="/bookings/total" hx-trigger="input from:closest form" hx-target="#booking-total" hx-swap="outerHTML" hx-include="closest form"></div>`)
		b.Input("Event name", models.FieldEventName, "text", form.EventName, errs)
		b.Input("Your name", models.FieldCustomerName, "text", form.CustomerName, errs)
		b.Input("Email", models.FieldCustomerEmail, "email", form.CustomerEmail, errs)
		b.Input("Quantity", models.FieldQuantity, "number", form.Quantity, errs, "min", "1")
		b.Input("Price per ticket", models.FieldPrice, "number", form.Price, errs, "min", "0", "step", "0.01")
		b.Component(ctx, BookingTotal(form))
		b.Raw(`<button type="submit" class="btn"`)
		if state.Busy() {
			b.Raw(` disabled>Booking...`)
		} else {
			b.Raw(`>Book ticket`)
		}
		b.Raw(`</button></form></section>`)
	})
}

// BookingTotal is the live price x quantity line
func BookingTotal(form models.BookingForm) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<p id="booking-total">Total: `)
		b.Money(form.Total())
		b.Raw(`</p>`)
	})
}

// TicketsList renders the booked tickets
func TicketsList(state store.State) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		b.Raw(`<section class="card"><h2>Your tickets (`)
		b.Text(strconv.Itoa(len(state.Tickets)))
		b.Raw(`)</h2>`)
		if len(state.Tickets) == 0 {
			b.Raw(`<p class="muted">No tickets booked yet.</p></section>`)
			return
		}

		b.Raw(`<table><thead><tr><th>Event</th><th>Name</th><th>Email</th><th>Qty</th><th>Total</th><th></th></tr></thead><tbody>`)
		for _, ticket := range state.Tickets {
			b.Raw(`<tr><td>`)
			b.Text(ticket.EventName)
			b.Raw(`</td><td>`)
			b.Text(ticket.CustomerName)
			b.Raw(`</td><td>`)
			b.Text(ticket.CustomerEmail)
			b.Raw(`</td><td>`)
			b.Text(strconv.Itoa(ticket.Quantity))
			b.Raw(`</td><td>`)
			b.Money(ticket.Total())
			b.Raw(`</td><td>`)
			b.ActionButton(ctx, "/bookings/"+ticket.ID.String()+"/delete", BookingsTarget, "Cancel", "btn btn-danger", state.Busy())
			b.Raw(`</td></tr>`)
		}
		b.Raw(`</tbody></table></section>`)
	})
}

// DeleteConfirm asks before a ticket is cancelled
func DeleteConfirm(ticket models.Ticket, busy bool) templ.Component {
	return components.Func(func(ctx context.Context, b *components.Builder) {
		action := "/bookings/" + ticket.ID.String() + "/delete"

		b.Raw(`<div class="card" role="alertdialog"><p>Are you sure you want to cancel this ticket`)
		if ticket.EventName != "" {
			b.Raw(` for `)
			b.Text(ticket.EventName)
		}
		b.Raw(`?</p>`)
		b.FormOpen(ctx, action, BookingsTarget)
		b.Raw(`<input type="hidden" name="confirm" value="yes"><button type="submit" class="btn btn-danger"`)
		if busy {
			b.Raw(` disabled`)
		}
		b.Raw(`>Yes, cancel it</button></form>`)
		b.Raw(`<a href="/bookings" class="btn-link" hx-get="/bookings" hx-target="#bookings-app" hx-select="#bookings-app" hx-swap="outerHTML">Keep ticket</a></div>`)
	})
}
