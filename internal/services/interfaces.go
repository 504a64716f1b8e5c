package services

import (
	"context"

	"ticketvue/internal/models"
	"ticketvue/internal/store"
)

// CatalogServiceInterface defines the catalog operations the storefront uses
type CatalogServiceInterface interface {
	EnsureLoaded(ctx context.Context, st *store.Store) error
	Refresh(ctx context.Context, st *store.Store) error
	Search(st *store.Store, query string)
	OpenEvent(st *store.Store, eventID string) error
	ToggleFavorite(st *store.Store, eventID string) error
}

// CheckoutServiceInterface defines cart and order operations
type CheckoutServiceInterface interface {
	AddToCart(st *store.Store) (*models.CartItem, error)
	RemoveFromCart(st *store.Store, itemID string) error
	Checkout(ctx context.Context, st *store.Store) error
}

// BookingServiceInterface defines the ticket booking operations
type BookingServiceInterface interface {
	UpdateDraft(st *store.Store, form models.BookingForm) models.BookingForm
	Book(ctx context.Context, st *store.Store, form models.BookingForm) (*models.Ticket, error)
	Cancel(ctx context.Context, st *store.Store, ticketID string) error
}

// AuthServiceInterface defines the local auth modal operations
type AuthServiceInterface interface {
	SignIn(st *store.Store, form models.AuthForm) (*models.User, error)
	SignOut(st *store.Store)
}
