package handlers

import (
	"net/http"

	"ticketvue/internal/logging"
	"ticketvue/internal/middleware"
	"ticketvue/internal/store"
	"ticketvue/web/templates/components"
	"ticketvue/web/templates/pages"

	"github.com/a-h/templ"
)

// render writes a component as HTML
func render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).WithError(err).Error("Failed to render page")
	}
}

// sessionStore returns the request's store or answers 500
func sessionStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	st := middleware.GetStore(r.Context())
	if st == nil {
		logging.FromContext(r.Context()).Error("Request reached a handler without a session store")
		fail(w, r, http.StatusInternalServerError, "Session error. Please refresh the page and try again.")
		return nil, false
	}
	return st, true
}

// respondApp re-renders the storefront region for htmx and redirects
// plain form posts back to the single page URL
func respondApp(w http.ResponseWriter, r *http.Request, st *store.Store) {
	if middleware.IsHTMXRequest(r) {
		render(w, r, http.StatusOK, pages.App(st.State()))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// respondBookings is respondApp for the booking page
func respondBookings(w http.ResponseWriter, r *http.Request, st *store.Store) {
	if middleware.IsHTMXRequest(r) {
		render(w, r, http.StatusOK, pages.BookingsApp(st.State(), nil))
		return
	}
	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// fail answers with an error banner for htmx and plain text otherwise
func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	if middleware.IsHTMXRequest(r) {
		// htmx only swaps 2xx by default, so retarget the banner explicitly
		w.Header().Set("HX-Retarget", "#banner")
		w.Header().Set("HX-Reswap", "outerHTML")
		render(w, r, status, components.Banner(&store.Banner{Text: message, Kind: store.BannerError}, false))
		return
	}
	http.Error(w, message, status)
}
