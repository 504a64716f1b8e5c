package handlers

import (
	"errors"
	"net/http"

	"ticketvue/internal/models"
	"ticketvue/internal/services"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles shopping cart and checkout requests
type CartHandler struct {
	checkout services.CheckoutServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(checkout services.CheckoutServiceInterface) *CartHandler {
	return &CartHandler{checkout: checkout}
}

// AddToCart adds the selected event at the chosen quantity
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if _, err := h.checkout.AddToCart(st); err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			fail(w, r, http.StatusNotFound, "Select an event first")
			return
		}
		fail(w, r, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	respondApp(w, r, st)
}

// RemoveFromCart drops one line from the cart
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	if err := h.checkout.RemoveFromCart(st, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			fail(w, r, http.StatusNotFound, "Cart item not found")
			return
		}
		fail(w, r, http.StatusInternalServerError, "Failed to remove item")
		return
	}
	respondApp(w, r, st)
}

// Checkout places the order. Every outcome is visible in the re-rendered
// state: the auth modal, an emptied cart or an unchanged one.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionStore(w, r)
	if !ok {
		return
	}

	_ = h.checkout.Checkout(r.Context(), st)
	respondApp(w, r, st)
}
