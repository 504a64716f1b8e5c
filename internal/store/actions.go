package store

import (
	"time"

	"ticketvue/internal/models"
)

// Action is a state transition request. Only the reducer interprets actions.
type Action interface {
	isAction()
}

// timed actions schedule a follow-up once their delay passes. A newer
// action with the same key cancels the pending follow-up.
type timed interface {
	Action
	followUp(o Options, s State) (key string, delay time.Duration, next Action, ok bool)
}

type (
	EventsRequested struct{}
	EventsLoaded    struct{ Events []models.Event }
	EventsFailed    struct{}
	QueryChanged    struct{ Query string }

	EventOpened     struct{ Event models.Event }
	NavigatedHome   struct{}
	NavigatedToCart struct{}

	QuantityIncremented struct{}
	QuantityDecremented struct{}
	QuantitySet         struct{ Value int }

	CartItemAdded   struct{ Item models.CartItem }
	CartItemRemoved struct{ ID string }
	OrderPlaced     struct{}

	FavoriteToggled struct{ EventID string }

	AuthModalOpened struct{}
	AuthModalClosed struct{}
	AuthModeChanged struct{ Mode models.AuthMode }
	AuthRejected    struct{ Errors models.ValidationErrors }
	SignedIn        struct{ User *models.User }
	SignedOut       struct{}

	BookingFormChanged struct{ Form models.BookingForm }
	BookingRejected    struct {
		Form   models.BookingForm
		Errors models.ValidationErrors
	}
	BookingSubmitted struct{}
	TicketAdded      struct{ Ticket models.Ticket }
	TicketRemoved    struct{ ID string }

	RequestStarted  struct{}
	RequestFinished struct{}

	// MessageShown replaces the banner. AutoClear removes it after the
	// configured message timeout.
	MessageShown struct {
		Text      string
		Kind      BannerKind
		AutoClear bool
	}
	MessageDismissed struct{}

	messageExpired struct{ seq uint64 }
	addedExpired   struct{}
)

func (EventsRequested) isAction()     {}
func (EventsLoaded) isAction()        {}
func (EventsFailed) isAction()        {}
func (QueryChanged) isAction()        {}
func (EventOpened) isAction()         {}
func (NavigatedHome) isAction()       {}
func (NavigatedToCart) isAction()     {}
func (QuantityIncremented) isAction() {}
func (QuantityDecremented) isAction() {}
func (QuantitySet) isAction()         {}
func (CartItemAdded) isAction()       {}
func (CartItemRemoved) isAction()     {}
func (OrderPlaced) isAction()         {}
func (FavoriteToggled) isAction()     {}
func (AuthModalOpened) isAction()     {}
func (AuthModalClosed) isAction()     {}
func (AuthModeChanged) isAction()     {}
func (AuthRejected) isAction()        {}
func (SignedIn) isAction()            {}
func (SignedOut) isAction()           {}
func (BookingFormChanged) isAction()  {}
func (BookingRejected) isAction()     {}
func (BookingSubmitted) isAction()    {}
func (TicketAdded) isAction()         {}
func (TicketRemoved) isAction()       {}
func (RequestStarted) isAction()      {}
func (RequestFinished) isAction()     {}
func (MessageShown) isAction()        {}
func (MessageDismissed) isAction()    {}
func (messageExpired) isAction()      {}
func (addedExpired) isAction()        {}

const (
	timerBanner = "banner"
	timerAdded  = "added"
)

func (a MessageShown) followUp(o Options, s State) (string, time.Duration, Action, bool) {
	// always claim the key so an older auto-clear cannot wipe this message
	return timerBanner, o.MessageTimeout, messageExpired{seq: s.bannerSeq}, a.AutoClear
}

func (CartItemAdded) followUp(o Options, _ State) (string, time.Duration, Action, bool) {
	return timerAdded, o.AddedFeedbackTimeout, addedExpired{}, true
}
