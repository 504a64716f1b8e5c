package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ticketvue/internal/clients"
	"ticketvue/internal/middleware"
	"ticketvue/internal/models"
	"ticketvue/internal/services"
	"ticketvue/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEvent() models.Event {
	return models.Event{
		ID:               models.NewNumericID(7),
		Name:             "Jazz Night",
		Location:         "Central Park",
		Price:            decimal.NewFromInt(20),
		AvailableTickets: 50,
	}
}

// setupRouter mounts the handlers behind a middleware that hands every
// request the given store
func setupRouter(t *testing.T, backend clients.Backend, st *store.Store) http.Handler {
	t.Helper()

	public := NewPublicHandler(services.NewCatalogService(backend))
	cart := NewCartHandler(services.NewCheckoutService(backend))
	auth := NewAuthHandler(services.NewAuthService())
	booking := NewBookingHandler(services.NewBookingService(backend))

	r := chi.NewRouter()
	if st != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithStore(r.Context(), "test-session", st)))
			})
		})
	}
	r.Get("/", public.HomePage)
	r.Post("/events/{id}/open", public.OpenEvent)
	r.Post("/events/{id}/favorite", public.ToggleFavorite)
	r.Post("/nav/cart", public.NavigateCart)
	r.Post("/detail/quantity", public.UpdateQuantity)
	r.Post("/checkout", cart.Checkout)
	r.Post("/auth/mode", auth.SwitchMode)
	r.Post("/auth/submit", auth.Submit)
	r.Post("/bookings", booking.CreateBooking)
	r.Post("/bookings/{id}/delete", booking.DeleteBooking)
	return r
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.Options{MessageTimeout: time.Hour, AddedFeedbackTimeout: time.Hour})
	t.Cleanup(st.Close)
	st.Dispatch(store.EventsLoaded{Events: []models.Event{testEvent()}})
	return st
}

func htmxPost(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func TestHomePage_LoadsCatalogOnce(t *testing.T) {
	backend := new(clients.MockBackend)
	backend.On("ListEvents", mock.Anything).Return([]models.Event{testEvent()}, nil).Once()
	st := store.New(store.Options{})
	t.Cleanup(st.Close)
	router := setupRouter(t, backend, st)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Jazz Night")
	}
	backend.AssertNumberOfCalls(t, "ListEvents", 1)
}

func TestHomePage_FailedFetchStillRenders(t *testing.T) {
	backend := new(clients.MockBackend)
	backend.On("ListEvents", mock.Anything).Return(nil, clients.ErrNetworkFailure)
	st := store.New(store.Options{})
	t.Cleanup(st.Close)

	rr := httptest.NewRecorder()
	setupRouter(t, backend, st).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No events found.")
	assert.False(t, st.State().Loading)
}

func TestMissingStore(t *testing.T) {
	rr := httptest.NewRecorder()
	setupRouter(t, new(clients.MockBackend), nil).ServeHTTP(rr, htmxPost("/nav/cart", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "#banner", rr.Header().Get("HX-Retarget"))
}

func TestOpenEvent(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected int
		page     store.Page
	}{
		{name: "known event", id: "7", expected: http.StatusOK, page: store.PageEventDetail},
		{name: "unknown event", id: "99", expected: http.StatusNotFound, page: store.PageHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			rr := httptest.NewRecorder()
			setupRouter(t, new(clients.MockBackend), st).ServeHTTP(rr, htmxPost("/events/"+tt.id+"/open", nil))

			assert.Equal(t, tt.expected, rr.Code)
			assert.Equal(t, tt.page, st.State().Page)
		})
	}
}

func TestToggleFavorite_UnknownEvent(t *testing.T) {
	st := newTestStore(t)
	rr := httptest.NewRecorder()
	setupRouter(t, new(clients.MockBackend), st).ServeHTTP(rr, htmxPost("/events/99/favorite", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Event not found")
	assert.Empty(t, st.State().Favorites)
}

func TestPlainPostRedirects(t *testing.T) {
	st := newTestStore(t)
	req := httptest.NewRequest(http.MethodPost, "/nav/cart", nil)
	rr := httptest.NewRecorder()
	setupRouter(t, new(clients.MockBackend), st).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, store.PageCart, st.State().Page)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		expected int
		quantity int
	}{
		{name: "increment", form: url.Values{"op": {"inc"}}, expected: http.StatusOK, quantity: 2},
		{name: "decrement floors at one", form: url.Values{"op": {"dec"}}, expected: http.StatusOK, quantity: 1},
		{name: "set", form: url.Values{"op": {"set"}, "value": {"5"}}, expected: http.StatusOK, quantity: 5},
		{name: "set non-number", form: url.Values{"op": {"set"}, "value": {"abc"}}, expected: http.StatusOK, quantity: 1},
		{name: "unknown op", form: url.Values{"op": {"double"}}, expected: http.StatusBadRequest, quantity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			st.Dispatch(store.EventOpened{Event: testEvent()})

			rr := httptest.NewRecorder()
			setupRouter(t, new(clients.MockBackend), st).ServeHTTP(rr, htmxPost("/detail/quantity", tt.form))

			assert.Equal(t, tt.expected, rr.Code)
			assert.Equal(t, tt.quantity, st.State().DetailQuantity)
		})
	}
}

func TestCheckout_WithoutUserOpensModal(t *testing.T) {
	backend := new(clients.MockBackend)
	st := newTestStore(t)
	st.Dispatch(store.EventOpened{Event: testEvent()})
	_, err := services.NewCheckoutService(backend).AddToCart(st)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	setupRouter(t, backend, st).ServeHTTP(rr, htmxPost("/checkout", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `role="dialog"`)
	assert.Len(t, st.State().Cart, 1)
	backend.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestAuth(t *testing.T) {
	st := newTestStore(t)
	st.Dispatch(store.AuthModalOpened{})
	router := setupRouter(t, new(clients.MockBackend), st)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, htmxPost("/auth/mode", url.Values{"mode": {"admin"}}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, htmxPost("/auth/mode", url.Values{"mode": {string(models.AuthModeSignup)}}))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Create account")

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, htmxPost("/auth/submit", url.Values{"email": {"  "}}))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, st.State().AuthModalOpen)
	assert.Nil(t, st.State().User)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, htmxPost("/auth/submit", url.Values{"email": {"grace@example.com"}}))
	assert.Equal(t, http.StatusOK, rr.Code)
	state := st.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "grace", state.User.Name)
	assert.False(t, state.AuthModalOpen)
}

func TestCreateBooking_ServerErrorMessage(t *testing.T) {
	backend := new(clients.MockBackend)
	backend.On("CreateTicket", mock.Anything, mock.Anything).
		Return(nil, &clients.ServerError{StatusCode: http.StatusConflict, Message: "Event sold out"})
	st := newTestStore(t)

	rr := httptest.NewRecorder()
	setupRouter(t, backend, st).ServeHTTP(rr, htmxPost("/bookings", url.Values{
		models.FieldEventName:     {"Jazz Night"},
		models.FieldCustomerName:  {"Ada"},
		models.FieldCustomerEmail: {"ada@example.com"},
		models.FieldQuantity:      {"1"},
		models.FieldPrice:         {"20"},
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Error: Event sold out")
	assert.Empty(t, st.State().Tickets)
	assert.False(t, st.State().Busy())
}

func TestDeleteBooking(t *testing.T) {
	t.Run("asks for confirmation first", func(t *testing.T) {
		backend := new(clients.MockBackend)
		st := newTestStore(t)
		st.Dispatch(store.TicketAdded{Ticket: models.Ticket{ID: models.NewID("t1"), EventName: "Jazz Night", Quantity: 1}})

		rr := httptest.NewRecorder()
		setupRouter(t, backend, st).ServeHTTP(rr, htmxPost("/bookings/t1/delete", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Are you sure you want to cancel this ticket for Jazz Night?")
		assert.Len(t, st.State().Tickets, 1)
		backend.AssertNotCalled(t, "DeleteTicket", mock.Anything, mock.Anything)
	})

	t.Run("unknown id still reaches the backend", func(t *testing.T) {
		backend := new(clients.MockBackend)
		backend.On("DeleteTicket", mock.Anything, "missing").Return(nil)
		st := newTestStore(t)
		st.Dispatch(store.TicketAdded{Ticket: models.Ticket{ID: models.NewID("t1"), Quantity: 1}})

		rr := httptest.NewRecorder()
		setupRouter(t, backend, st).ServeHTTP(rr, htmxPost("/bookings/missing/delete", url.Values{"confirm": {"yes"}}))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, st.State().Tickets, 1)
		backend.AssertExpectations(t)
	})
}
