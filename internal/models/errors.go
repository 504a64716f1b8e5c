package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotSignedIn      = errors.New("sign in required")
)
