package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ticketvue/internal/middleware"
	"ticketvue/internal/models"
	"ticketvue/internal/services"
	"ticketvue/internal/store"
	"ticketvue/web/templates/components"
	"ticketvue/web/templates/pages"

	"github.com/go-chi/chi/v5"
)

// PublicHandler serves the storefront: catalog, search, detail and navigation
type PublicHandler struct {
	catalog services.CatalogServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(catalog services.CatalogServiceInterface) *PublicHandler {
	return &PublicHandler{catalog: catalog}
}

// HomePage renders whatever page the session is on
func (h *PublicHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	// a failed fetch is logged and leaves the catalog empty
	_ = h.catalog.EnsureLoaded(r.Context(), st)

	render(w, r, http.StatusOK, pages.Storefront(st.State()))
}

// Search updates the filter and returns the catalog grid
func (h *PublicHandler) Search(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	h.catalog.Search(st, r.URL.Query().Get("q"))

	if middleware.IsHTMXRequest(r) {
		render(w, r, http.StatusOK, pages.CatalogGrid(st.State()))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RefreshEvents re-fetches the catalog
func (h *PublicHandler) RefreshEvents(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	_ = h.catalog.Refresh(r.Context(), st)
	respondApp(w, r, st)
}

// OpenEvent shows the detail page for an event
func (h *PublicHandler) OpenEvent(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := h.catalog.OpenEvent(st, chi.URLParam(r, "id")); err != nil {
		h.handleEventError(w, r, err)
		return
	}
	respondApp(w, r, st)
}

// ToggleFavorite flips an event in or out of the favorites
func (h *PublicHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := h.catalog.ToggleFavorite(st, chi.URLParam(r, "id")); err != nil {
		h.handleEventError(w, r, err)
		return
	}
	respondApp(w, r, st)
}

// NavigateHome goes back to the catalog
func (h *PublicHandler) NavigateHome(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	st.Dispatch(store.NavigatedHome{})
	respondApp(w, r, st)
}

// NavigateCart opens the cart page
func (h *PublicHandler) NavigateCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	st.Dispatch(store.NavigatedToCart{})
	respondApp(w, r, st)
}

// UpdateQuantity drives the detail page quantity selector
func (h *PublicHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	switch r.FormValue("op") {
	case "inc":
		st.Dispatch(store.QuantityIncremented{})
	case "dec":
		st.Dispatch(store.QuantityDecremented{})
	case "set":
		// anything that is not a number counts as 1
		value, err := strconv.Atoi(r.FormValue("value"))
		if err != nil {
			value = 1
		}
		st.Dispatch(store.QuantitySet{Value: value})
	default:
		fail(w, r, http.StatusBadRequest, "Invalid quantity operation")
		return
	}
	respondApp(w, r, st)
}

// Banner returns the current message, empty once it has cleared
func (h *PublicHandler) Banner(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	render(w, r, http.StatusOK, components.Banner(st.State().Banner, true))
}

func (h *PublicHandler) handleEventError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrEventNotFound) {
		fail(w, r, http.StatusNotFound, "Event not found")
		return
	}
	fail(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
