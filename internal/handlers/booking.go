package handlers

import (
	"net/http"

	"ticketvue/internal/middleware"
	"ticketvue/internal/models"
	"ticketvue/internal/services"
	"ticketvue/web/templates/pages"

	"github.com/go-chi/chi/v5"
)

// BookingHandler serves the booking form and ticket list
type BookingHandler struct {
	booking services.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(booking services.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// BookingsPage renders the form and the session's tickets
func (h *BookingHandler) BookingsPage(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	render(w, r, http.StatusOK, pages.Bookings(st.State(), nil))
}

// CreateBooking validates and submits the booking form
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	// validation and backend failures both end up in the session state
	_, _ = h.booking.Book(r.Context(), st, bookingFormFromRequest(r))
	respondBookings(w, r, st)
}

// BookingTotal recomputes the live total while the form is edited
func (h *BookingHandler) BookingTotal(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	form := h.booking.UpdateDraft(st, bookingFormFromRequest(r))
	render(w, r, http.StatusOK, pages.BookingTotal(form))
}

// DeleteBooking cancels a ticket once the user has confirmed
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	ticketID := chi.URLParam(r, "id")
	if r.FormValue("confirm") != "yes" {
		confirm := findTicket(st.State().Tickets, ticketID)
		if middleware.IsHTMXRequest(r) {
			render(w, r, http.StatusOK, pages.BookingsApp(st.State(), &confirm))
			return
		}
		render(w, r, http.StatusOK, pages.Bookings(st.State(), &confirm))
		return
	}

	_ = h.booking.Cancel(r.Context(), st, ticketID)
	respondBookings(w, r, st)
}

func bookingFormFromRequest(r *http.Request) models.BookingForm {
	return models.BookingForm{
		EventName:     r.FormValue(models.FieldEventName),
		CustomerName:  r.FormValue(models.FieldCustomerName),
		CustomerEmail: r.FormValue(models.FieldCustomerEmail),
		Quantity:      r.FormValue(models.FieldQuantity),
		Price:         r.FormValue(models.FieldPrice),
	}
}

// findTicket returns the listed ticket, or one carrying only the id so an
// unknown ticket can still be cancelled on the backend
func findTicket(tickets []models.Ticket, id string) models.Ticket {
	for _, t := range tickets {
		if t.ID.String() == id {
			return t
		}
	}
	return models.Ticket{ID: models.NewID(id)}
}
