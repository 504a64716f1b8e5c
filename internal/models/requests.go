package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Booking form field names, shared by the form renderer and the validator
const (
	FieldEventName     = "eventName"
	FieldCustomerName  = "customerName"
	FieldCustomerEmail = "customerEmail"
	FieldQuantity      = "quantity"
	FieldPrice         = "price"
	FieldEmail         = "email"
)

// BookingForm holds the raw booking form input exactly as typed
type BookingForm struct {
	EventName     string
	CustomerName  string
	CustomerEmail string
	Quantity      string
	Price         string
}

// DefaultBookingForm is the state the form resets to
func DefaultBookingForm() BookingForm {
	return BookingForm{Quantity: "1"}
}

// TicketCreateRequest is the payload for POST /tickets
type TicketCreateRequest struct {
	EventName     string  `json:"eventName"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// ParsedQuantity returns the quantity and whether it parsed as an integer
func (f BookingForm) ParsedQuantity() (int, bool) {
	q, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		return 0, false
	}
	return q, true
}

// ParsedPrice returns the price and whether it parsed as a number
func (f BookingForm) ParsedPrice() (decimal.Decimal, bool) {
	p, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return decimal.Zero, false
	}
	// the backend takes the price as a JSON number
	if math.IsInf(p.InexactFloat64(), 0) {
		return decimal.Zero, false
	}
	return p, true
}

// Total is price x quantity, zero while either field is incomplete
func (f BookingForm) Total() decimal.Decimal {
	q, okQ := f.ParsedQuantity()
	p, okP := f.ParsedPrice()
	if !okQ || !okP {
		return decimal.Zero
	}
	return LineTotal(p, q)
}

// Validate checks every field and collects all failures
func (f BookingForm) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.EventName) == "" {
		errs.add(FieldEventName, RequiredField, "Event name is required")
	}
	if strings.TrimSpace(f.CustomerName) == "" {
		errs.add(FieldCustomerName, RequiredField, "Customer name is required")
	}

	email := strings.TrimSpace(f.CustomerEmail)
	if email == "" {
		errs.add(FieldCustomerEmail, RequiredField, "Email is required")
	} else if !IsValidEmail(email) {
		errs.add(FieldCustomerEmail, InvalidFormat, "Invalid email format")
	}

	if q, ok := f.ParsedQuantity(); !ok || q < 1 {
		errs.add(FieldQuantity, InvalidValue, "Quantity must be at least 1")
	}
	if p, ok := f.ParsedPrice(); !ok || p.IsNegative() {
		errs.add(FieldPrice, InvalidValue, "Price must be valid")
	}

	return errs
}

// ToRequest converts a validated form into the backend payload
func (f BookingForm) ToRequest() (*TicketCreateRequest, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, errs
	}
	q, _ := f.ParsedQuantity()
	p, _ := f.ParsedPrice()
	return &TicketCreateRequest{
		EventName:     strings.TrimSpace(f.EventName),
		CustomerName:  strings.TrimSpace(f.CustomerName),
		CustomerEmail: strings.TrimSpace(f.CustomerEmail),
		Quantity:      q,
		Price:         p.InexactFloat64(),
	}, nil
}

// AuthMode selects between the login and signup variants of the auth modal
type AuthMode string

const (
	AuthModeLogin  AuthMode = "login"
	AuthModeSignup AuthMode = "signup"
)

// AuthForm is the auth modal input. The password is accepted but never checked.
type AuthForm struct {
	Email    string
	Password string
	Name     string
}

// Validate requires an email so a display name can be derived
func (f AuthForm) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.Email) == "" {
		errs.add(FieldEmail, RequiredField, "Email is required")
	}
	return errs
}
