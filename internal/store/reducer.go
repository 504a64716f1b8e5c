package store

import (
	"maps"
	"slices"

	"ticketvue/internal/models"
)

// reduce applies one action to the state. It never blocks and never
// talks to the backend.
func reduce(s *State, action Action) {
	switch a := action.(type) {
	case EventsRequested:
		s.Loading = true
	case EventsLoaded:
		s.Events = slices.Clone(a.Events)
		s.Loading = false
		s.EventsLoaded = true
	case EventsFailed:
		s.Loading = false
		s.EventsLoaded = true
	case QueryChanged:
		s.Query = a.Query

	case EventOpened:
		event := a.Event
		s.Selected = &event
		s.DetailQuantity = 1
		s.JustAdded = false
		s.Page = PageEventDetail
	case NavigatedHome:
		s.Page = PageHome
	case NavigatedToCart:
		s.Page = PageCart

	case QuantityIncremented:
		s.DetailQuantity++
	case QuantityDecremented:
		s.DetailQuantity = max(1, s.DetailQuantity-1)
	case QuantitySet:
		s.DetailQuantity = max(1, a.Value)

	case CartItemAdded:
		s.Cart = append(s.Cart, a.Item)
		s.JustAdded = true
	case addedExpired:
		s.JustAdded = false
	case CartItemRemoved:
		s.Cart = models.RemoveCartItem(s.Cart, a.ID)
	case OrderPlaced:
		s.Cart = nil
		s.Page = PageHome

	case FavoriteToggled:
		if s.Favorites == nil {
			s.Favorites = map[string]struct{}{}
		}
		if _, ok := s.Favorites[a.EventID]; ok {
			delete(s.Favorites, a.EventID)
		} else {
			s.Favorites[a.EventID] = struct{}{}
		}

	case AuthModalOpened:
		s.AuthModalOpen = true
		s.AuthErrors = nil
	case AuthModalClosed:
		s.AuthModalOpen = false
		s.AuthErrors = nil
	case AuthModeChanged:
		s.AuthMode = a.Mode
		s.AuthErrors = nil
	case AuthRejected:
		s.AuthModalOpen = true
		s.AuthErrors = maps.Clone(a.Errors)
	case SignedIn:
		if a.User != nil {
			user := *a.User
			s.User = &user
		}
		s.AuthModalOpen = false
		s.AuthErrors = nil
	case SignedOut:
		s.User = nil

	case BookingFormChanged:
		s.BookingForm = a.Form
	case BookingRejected:
		s.BookingForm = a.Form
		s.BookingErrors = maps.Clone(a.Errors)
	case BookingSubmitted:
		s.BookingForm = models.DefaultBookingForm()
		s.BookingErrors = nil
	case TicketAdded:
		s.Tickets = append(s.Tickets, a.Ticket)
	case TicketRemoved:
		s.Tickets = models.RemoveTicket(s.Tickets, a.ID)

	case RequestStarted:
		s.InFlight++
	case RequestFinished:
		s.InFlight = max(0, s.InFlight-1)

	case MessageShown:
		s.bannerSeq++
		s.Banner = &Banner{Text: a.Text, Kind: a.Kind}
	case MessageDismissed:
		s.bannerSeq++
		s.Banner = nil
	case messageExpired:
		if a.seq == s.bannerSeq {
			s.Banner = nil
		}
	}
}
