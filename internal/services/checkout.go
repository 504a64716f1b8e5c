package services

import (
	"context"
	"fmt"
	"slices"

	"ticketvue/internal/clients"
	"ticketvue/internal/logging"
	"ticketvue/internal/models"
	"ticketvue/internal/store"

	"github.com/sirupsen/logrus"
)

const MessageOrderPlaced = "Order placed successfully!"

// CheckoutService manages the session cart and places orders
type CheckoutService struct {
	backend clients.Backend
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(backend clients.Backend) *CheckoutService {
	return &CheckoutService{backend: backend}
}

// AddToCart appends the selected event at the chosen quantity as a new line
func (s *CheckoutService) AddToCart(st *store.Store) (*models.CartItem, error) {
	state := st.State()
	if state.Selected == nil {
		return nil, models.ErrEventNotFound
	}

	item := models.NewCartItem(*state.Selected, max(1, state.DetailQuantity))
	st.Dispatch(store.CartItemAdded{Item: item})
	return &item, nil
}

// RemoveFromCart drops one cart line
func (s *CheckoutService) RemoveFromCart(st *store.Store, itemID string) error {
	found := slices.ContainsFunc(st.State().Cart, func(item models.CartItem) bool {
		return item.ID == itemID
	})
	if !found {
		return models.ErrCartItemNotFound
	}
	st.Dispatch(store.CartItemRemoved{ID: itemID})
	return nil
}

// Checkout submits the cart as an order. Without a signed in user the auth
// modal opens instead and nothing is sent. A failed order leaves the cart
// untouched.
func (s *CheckoutService) Checkout(ctx context.Context, st *store.Store) error {
	state := st.State()
	if !state.SignedIn() {
		st.Dispatch(store.AuthModalOpened{})
		return models.ErrNotSignedIn
	}
	if len(state.Cart) == 0 {
		return models.ErrEmptyCart
	}

	st.Dispatch(store.RequestStarted{})
	defer st.Dispatch(store.RequestFinished{})

	req := models.NewOrderRequest(state.User, state.Cart)
	if err := s.backend.CreateOrder(ctx, req); err != nil {
		logging.FromContext(ctx).WithError(err).WithFields(logrus.Fields{
			"endpoint": "/orders",
			"user_id":  state.User.ID,
			"items":    len(req.Items),
		}).Error("Error placing order")
		return fmt.Errorf("failed to place order: %w", err)
	}

	st.Dispatch(
		store.OrderPlaced{},
		store.MessageShown{Text: MessageOrderPlaced, Kind: store.BannerSuccess, AutoClear: true},
	)
	return nil
}
