package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeRate is the service fee charged on top of the cart subtotal
var FeeRate = decimal.RequireFromString("0.1")

// CartItem represents one line in the shopping cart. Adding the same
// event twice yields two lines.
type CartItem struct {
	ID       string `json:"id"`
	Event    Event  `json:"event"`
	Quantity int    `json:"quantity"`
}

// NewCartItem creates a line with a fresh time-ordered id
func NewCartItem(event Event, quantity int) CartItem {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return CartItem{
		ID:       id.String(),
		Event:    event,
		Quantity: quantity,
	}
}

// LineTotal is the event price times quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return LineTotal(i.Event.Price, i.Quantity)
}

// CartSubtotal sums price x quantity over every line
func CartSubtotal(items []CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// CartFee is the fee line shown at checkout
func CartFee(items []CartItem) decimal.Decimal {
	return CartSubtotal(items).Mul(FeeRate)
}

// CartTotal is subtotal plus fee
func CartTotal(items []CartItem) decimal.Decimal {
	return CartSubtotal(items).Mul(decimal.NewFromInt(1).Add(FeeRate))
}

// RemoveCartItem returns items without the line with the given id
func RemoveCartItem(items []CartItem, id string) []CartItem {
	kept := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}
