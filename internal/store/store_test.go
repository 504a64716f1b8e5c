package store

import (
	"sync"
	"testing"
	"time"

	"ticketvue/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(id, name string, price string) models.Event {
	return models.Event{
		ID:               models.NewID(id),
		Name:             name,
		Location:         "Central Park",
		Price:            decimal.RequireFromString(price),
		AvailableTickets: 100,
	}
}

func fastStore() *Store {
	return New(Options{MessageTimeout: 20 * time.Millisecond, AddedFeedbackTimeout: 20 * time.Millisecond})
}

func TestStore_InitialState(t *testing.T) {
	s := New(Options{})
	state := s.State()

	assert.Equal(t, PageHome, state.Page)
	assert.Equal(t, 1, state.DetailQuantity)
	assert.Equal(t, models.AuthModeLogin, state.AuthMode)
	assert.Equal(t, models.DefaultBookingForm(), state.BookingForm)
	assert.False(t, state.Busy())
	assert.False(t, state.SignedIn())
	assert.Nil(t, state.Banner)
}

func TestStore_Navigation(t *testing.T) {
	s := New(Options{})
	event := testEvent("1", "Jazz Night", "20")

	s.Dispatch(QuantitySet{Value: 4}, EventOpened{Event: event})
	state := s.State()
	assert.Equal(t, PageEventDetail, state.Page)
	require.NotNil(t, state.Selected)
	assert.Equal(t, "Jazz Night", state.Selected.Name)
	assert.Equal(t, 1, state.DetailQuantity, "opening an event resets quantity")

	s.Dispatch(NavigatedHome{})
	assert.Equal(t, PageHome, s.State().Page)

	s.Dispatch(NavigatedToCart{})
	assert.Equal(t, PageCart, s.State().Page)
}

func TestStore_DetailQuantity(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int
	}{
		{"increment", []Action{QuantityIncremented{}, QuantityIncremented{}}, 3},
		{"decrement floors at one", []Action{QuantityDecremented{}, QuantityDecremented{}}, 1},
		{"increment then decrement", []Action{QuantityIncremented{}, QuantityIncremented{}, QuantityDecremented{}}, 2},
		{"set", []Action{QuantitySet{Value: 7}}, 7},
		{"set below one", []Action{QuantitySet{Value: 0}}, 1},
		{"set negative", []Action{QuantitySet{Value: -3}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{})
			s.Dispatch(tt.actions...)
			assert.Equal(t, tt.want, s.State().DetailQuantity)
		})
	}
}

func TestStore_DetailTotal(t *testing.T) {
	s := New(Options{})
	assert.True(t, s.State().DetailTotal().IsZero())

	s.Dispatch(EventOpened{Event: testEvent("1", "Jazz", "19.99")}, QuantitySet{Value: 3})
	assert.Equal(t, "59.97", models.FormatMoney(s.State().DetailTotal()))
}

func TestStore_CartTotals(t *testing.T) {
	s := New(Options{})
	a := testEvent("a", "A", "20")
	b := testEvent("b", "B", "5")

	s.Dispatch(
		CartItemAdded{Item: models.NewCartItem(a, 2)},
		CartItemAdded{Item: models.NewCartItem(b, 1)},
	)
	s.Close()

	state := s.State()
	require.Len(t, state.Cart, 2)
	assert.Equal(t, "45.00", models.FormatMoney(state.Subtotal()))
	assert.Equal(t, "4.50", models.FormatMoney(state.Fee()))
	assert.Equal(t, "49.50", models.FormatMoney(state.Total()))
}

func TestStore_CartDuplicatesAreNotMerged(t *testing.T) {
	s := New(Options{})
	defer s.Close()
	event := testEvent("a", "A", "20")

	first := models.NewCartItem(event, 1)
	second := models.NewCartItem(event, 1)
	s.Dispatch(CartItemAdded{Item: first}, CartItemAdded{Item: second})

	state := s.State()
	require.Len(t, state.Cart, 2)
	assert.NotEqual(t, state.Cart[0].ID, state.Cart[1].ID)

	s.Dispatch(CartItemRemoved{ID: first.ID})
	state = s.State()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, second.ID, state.Cart[0].ID)
}

func TestStore_OrderPlaced(t *testing.T) {
	s := New(Options{})
	defer s.Close()

	s.Dispatch(
		CartItemAdded{Item: models.NewCartItem(testEvent("a", "A", "20"), 1)},
		NavigatedToCart{},
		OrderPlaced{},
	)

	state := s.State()
	assert.Empty(t, state.Cart)
	assert.Equal(t, PageHome, state.Page)
}

func TestStore_FavoriteToggleTwiceRestores(t *testing.T) {
	s := New(Options{})
	s.Dispatch(FavoriteToggled{EventID: "1"})
	assert.True(t, s.State().IsFavorite("1"))

	s.Dispatch(FavoriteToggled{EventID: "1"})
	assert.False(t, s.State().IsFavorite("1"))
	assert.Empty(t, s.State().Favorites)
}

func TestStore_AuthModal(t *testing.T) {
	s := New(Options{})

	s.Dispatch(AuthModalOpened{}, AuthModeChanged{Mode: models.AuthModeSignup})
	state := s.State()
	assert.True(t, state.AuthModalOpen)
	assert.Equal(t, models.AuthModeSignup, state.AuthMode)

	errs := models.ValidationErrors{}
	errs[models.FieldEmail] = models.FieldError{Field: models.FieldEmail, Kind: models.RequiredField, Message: "Email is required"}
	s.Dispatch(AuthRejected{Errors: errs})
	state = s.State()
	assert.True(t, state.AuthModalOpen)
	assert.True(t, state.AuthErrors.Has(models.FieldEmail))

	s.Dispatch(SignedIn{User: &models.User{ID: 1, Email: "a@b.co", Name: "a"}})
	state = s.State()
	assert.False(t, state.AuthModalOpen)
	assert.Empty(t, state.AuthErrors)
	require.NotNil(t, state.User)
	assert.Equal(t, "a@b.co", state.User.Email)

	s.Dispatch(SignedOut{})
	assert.False(t, s.State().SignedIn())
}

func TestStore_BookingFormLifecycle(t *testing.T) {
	s := New(Options{})
	form := models.BookingForm{EventName: "Jazz", Quantity: "2", Price: "10"}

	errs := models.ValidationErrors{}
	errs[models.FieldCustomerName] = models.FieldError{Field: models.FieldCustomerName, Kind: models.RequiredField}
	s.Dispatch(BookingRejected{Form: form, Errors: errs})

	state := s.State()
	assert.Equal(t, form, state.BookingForm)
	assert.True(t, state.BookingErrors.Has(models.FieldCustomerName))

	s.Dispatch(BookingSubmitted{})
	state = s.State()
	assert.Equal(t, models.DefaultBookingForm(), state.BookingForm)
	assert.Empty(t, state.BookingErrors)
}

func TestStore_Tickets(t *testing.T) {
	s := New(Options{})
	s.Dispatch(
		TicketAdded{Ticket: models.Ticket{ID: models.NewID("t1")}},
		TicketAdded{Ticket: models.Ticket{ID: models.NewID("t2")}},
		TicketRemoved{ID: "missing"},
	)
	assert.Len(t, s.State().Tickets, 2)

	s.Dispatch(TicketRemoved{ID: "t1"})
	tickets := s.State().Tickets
	require.Len(t, tickets, 1)
	assert.Equal(t, "t2", tickets[0].ID.String())
}

func TestStore_BusyCountsInFlightRequests(t *testing.T) {
	s := New(Options{})
	s.Dispatch(RequestStarted{}, RequestStarted{})
	assert.True(t, s.State().Busy())

	s.Dispatch(RequestFinished{})
	assert.True(t, s.State().Busy())

	s.Dispatch(RequestFinished{}, RequestFinished{})
	assert.False(t, s.State().Busy())
	assert.Equal(t, 0, s.State().InFlight)
}

func TestStore_LoadingFlag(t *testing.T) {
	s := New(Options{})
	s.Dispatch(EventsRequested{})
	assert.True(t, s.State().Loading)

	s.Dispatch(EventsFailed{})
	state := s.State()
	assert.False(t, state.Loading)
	assert.True(t, state.EventsLoaded)
	assert.Empty(t, state.Events)

	s.Dispatch(EventsLoaded{Events: []models.Event{testEvent("1", "Jazz", "10")}}, QueryChanged{Query: "park"})
	state = s.State()
	assert.Len(t, state.Events, 1)
	assert.Len(t, state.FilteredEvents(), 1)
}

func TestStore_SuccessMessageClears(t *testing.T) {
	s := fastStore()
	defer s.Close()

	s.Dispatch(MessageShown{Text: "Ticket booked successfully!", Kind: BannerSuccess, AutoClear: true})
	require.NotNil(t, s.State().Banner)

	assert.Eventually(t, func() bool {
		return s.State().Banner == nil
	}, time.Second, 5*time.Millisecond)
}

func TestStore_ErrorMessageStays(t *testing.T) {
	s := fastStore()
	defer s.Close()

	s.Dispatch(MessageShown{Text: "Error: sold out", Kind: BannerError})
	time.Sleep(60 * time.Millisecond)

	banner := s.State().Banner
	require.NotNil(t, banner)
	assert.Equal(t, "Error: sold out", banner.Text)
	assert.Equal(t, 0, s.pendingTimers())
}

func TestStore_NewerMessageCancelsOlderClear(t *testing.T) {
	s := fastStore()
	defer s.Close()

	s.Dispatch(MessageShown{Text: "Ticket deleted successfully!", Kind: BannerSuccess, AutoClear: true})
	s.Dispatch(MessageShown{Text: "Error deleting ticket. Please try again.", Kind: BannerError})
	time.Sleep(60 * time.Millisecond)

	banner := s.State().Banner
	require.NotNil(t, banner)
	assert.Equal(t, BannerError, banner.Kind)
}

func TestStore_AddedFlagClears(t *testing.T) {
	s := fastStore()
	defer s.Close()

	s.Dispatch(CartItemAdded{Item: models.NewCartItem(testEvent("a", "A", "1"), 1)})
	assert.True(t, s.State().JustAdded)

	assert.Eventually(t, func() bool {
		return !s.State().JustAdded
	}, time.Second, 5*time.Millisecond)
}

func TestStore_CloseCancelsTimers(t *testing.T) {
	s := fastStore()
	s.Dispatch(
		MessageShown{Text: "done", Kind: BannerSuccess, AutoClear: true},
		CartItemAdded{Item: models.NewCartItem(testEvent("a", "A", "1"), 1)},
	)
	assert.Equal(t, 2, s.pendingTimers())

	s.Close()
	assert.Equal(t, 0, s.pendingTimers())

	time.Sleep(60 * time.Millisecond)
	state := s.State()
	assert.NotNil(t, state.Banner, "closed store is never updated")
	assert.True(t, state.JustAdded)

	s.Dispatch(NavigatedToCart{})
	assert.Equal(t, PageHome, s.State().Page)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	s := New(Options{})
	s.Dispatch(
		FavoriteToggled{EventID: "1"},
		TicketAdded{Ticket: models.Ticket{ID: models.NewID("t1")}},
		EventOpened{Event: testEvent("1", "Jazz", "10")},
	)

	snapshot := s.State()
	snapshot.Favorites["2"] = struct{}{}
	snapshot.Tickets[0].ID = models.NewID("changed")
	snapshot.Selected.Name = "changed"

	state := s.State()
	assert.False(t, state.IsFavorite("2"))
	assert.Equal(t, "t1", state.Tickets[0].ID.String())
	assert.Equal(t, "Jazz", state.Selected.Name)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(Options{})
	defer s.Close()
	event := testEvent("a", "A", "1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(CartItemAdded{Item: models.NewCartItem(event, 1)})
		}()
	}
	wg.Wait()

	assert.Len(t, s.State().Cart, 50)
}
