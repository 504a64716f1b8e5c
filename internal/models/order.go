package models

// OrderItem is one cart line as sent to the backend
type OrderItem struct {
	EventID  ID      `json:"eventId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderCreateRequest is the checkout payload for POST /orders
type OrderCreateRequest struct {
	UserID int64       `json:"userId"`
	Items  []OrderItem `json:"items"`
}

// NewOrderRequest aggregates the cart into an order for user
func NewOrderRequest(user *User, items []CartItem) *OrderCreateRequest {
	req := &OrderCreateRequest{
		UserID: user.ID,
		Items:  make([]OrderItem, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, OrderItem{
			EventID:  item.Event.ID,
			Quantity: item.Quantity,
			Price:    item.Event.Price.InexactFloat64(),
		})
	}
	return req
}
