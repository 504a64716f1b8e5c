package store

import (
	"maps"
	"slices"

	"ticketvue/internal/models"

	"github.com/shopspring/decimal"
)

// Page is a node of the storefront navigation state machine
type Page string

const (
	PageHome        Page = "home"
	PageEventDetail Page = "event-detail"
	PageCart        Page = "cart"
)

// BannerKind colours a banner
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is the transient message shown above the page
type Banner struct {
	Text string
	Kind BannerKind
}

// State is everything one browser session sees. Each field has exactly one
// writer: the reducer.
type State struct {
	Page Page

	// catalog
	Events       []models.Event
	EventsLoaded bool
	Loading      bool
	Query        string

	// event detail
	Selected       *models.Event
	DetailQuantity int
	JustAdded      bool

	Cart      []models.CartItem
	Favorites map[string]struct{}

	// auth modal
	User          *models.User
	AuthModalOpen bool
	AuthMode      models.AuthMode
	AuthErrors    models.ValidationErrors

	// booking variant
	Tickets       []models.Ticket
	BookingForm   models.BookingForm
	BookingErrors models.ValidationErrors

	InFlight  int
	Banner    *Banner
	bannerSeq uint64
}

func initialState() State {
	return State{
		Page:           PageHome,
		DetailQuantity: 1,
		Favorites:      map[string]struct{}{},
		AuthMode:       models.AuthModeLogin,
		BookingForm:    models.DefaultBookingForm(),
	}
}

// Busy reports whether any backend request is in flight
func (s State) Busy() bool {
	return s.InFlight > 0
}

// FilteredEvents applies the search query to the catalog
func (s State) FilteredEvents() []models.Event {
	return models.FilterEvents(s.Events, s.Query)
}

// IsFavorite reports whether the event id is in the favorites set
func (s State) IsFavorite(eventID string) bool {
	_, ok := s.Favorites[eventID]
	return ok
}

// SignedIn reports whether a local user is present
func (s State) SignedIn() bool {
	return s.User != nil
}

// DetailTotal is the selected event price times the chosen quantity
func (s State) DetailTotal() decimal.Decimal {
	if s.Selected == nil {
		return decimal.Zero
	}
	return models.LineTotal(s.Selected.Price, s.DetailQuantity)
}

func (s State) Subtotal() decimal.Decimal { return models.CartSubtotal(s.Cart) }
func (s State) Fee() decimal.Decimal      { return models.CartFee(s.Cart) }
func (s State) Total() decimal.Decimal    { return models.CartTotal(s.Cart) }

// clone deep-copies everything a caller could mutate
func (s State) clone() State {
	out := s
	out.Events = slices.Clone(s.Events)
	out.Cart = slices.Clone(s.Cart)
	out.Tickets = slices.Clone(s.Tickets)
	out.Favorites = maps.Clone(s.Favorites)
	out.AuthErrors = maps.Clone(s.AuthErrors)
	out.BookingErrors = maps.Clone(s.BookingErrors)
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.Banner != nil {
		banner := *s.Banner
		out.Banner = &banner
	}
	return out
}
