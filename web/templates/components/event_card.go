package components

import (
	"context"
	"strconv"

	"ticketvue/internal/models"

	"github.com/a-h/templ"
)

// EventCard is one catalog tile
func EventCard(event models.Event, favorite bool) templ.Component {
	return Func(func(ctx context.Context, b *Builder) {
		id := event.ID.String()

		b.Raw(`<article class="card"`)
		b.Attr("id", "event-"+id)
		b.Raw(`>`)
		if event.Category != "" {
			b.Raw(`<p class="muted">`)
			b.Text(event.Category)
			b.Raw(`</p>`)
		}
		b.Raw(`<h3>`)
		b.Text(event.Name)
		b.Raw(`</h3><p class="muted">`)
		b.Text(event.Location)
		b.Raw(` &middot; `)
		b.Text(event.DisplayDate())
		b.Raw(`</p><p>`)
		b.Money(event.Price)
		b.Raw(` <span class="muted">`)
		b.Text(strconv.Itoa(event.AvailableTickets))
		b.Raw(` left</span></p>`)

		b.ActionButton(ctx, "/events/"+id+"/open", AppTarget, "View details", "btn", false)
		label := "&#9825;"
		if favorite {
			label = "&#9829;"
		}
		b.FormOpen(ctx, "/events/"+id+"/favorite", AppTarget)
		b.Raw(`<button type="submit" class="btn-link"`)
		b.Attr("aria-pressed", strconv.FormatBool(favorite))
		b.Raw(` aria-label="Toggle favorite">`, label, `</button></form>`)
		b.Raw(`</article>`)
	})
}
