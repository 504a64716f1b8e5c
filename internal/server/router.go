package server

import (
	"encoding/json"
	"net/http"

	"ticketvue/internal/clients"
	"ticketvue/internal/handlers"
	"ticketvue/internal/middleware"
	"ticketvue/internal/monitoring"
	"ticketvue/internal/services"
	"ticketvue/internal/store"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

// Dependencies are the collaborators the router is built from
type Dependencies struct {
	Backend  clients.Backend
	Registry *store.Registry
	Cookies  sessions.Store
}

// NewRouter wires services, handlers and middleware into the UI routes
func NewRouter(deps Dependencies) http.Handler {
	// Initialize services
	catalogService := services.NewCatalogService(deps.Backend)
	checkoutService := services.NewCheckoutService(deps.Backend)
	bookingService := services.NewBookingService(deps.Backend)
	authService := services.NewAuthService()

	// Initialize handlers
	publicHandler := handlers.NewPublicHandler(catalogService)
	cartHandler := handlers.NewCartHandler(checkoutService)
	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	sessionMiddleware := middleware.NewSessionMiddleware(deps.Cookies, deps.Registry)

	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.SecureHeaders)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	// Operational endpoints carry no session
	r.Get("/health", healthHandler(deps.Registry))
	r.Handle("/metrics", monitoring.Handler())

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.LoadStore)
		r.Use(middleware.CSRFProtection)

		// Storefront
		r.Get("/", publicHandler.HomePage)
		r.Get("/search", publicHandler.Search)
		r.Get("/banner", publicHandler.Banner)
		r.Post("/events/refresh", publicHandler.RefreshEvents)
		r.Post("/events/{id}/open", publicHandler.OpenEvent)
		r.Post("/events/{id}/favorite", publicHandler.ToggleFavorite)
		r.Post("/nav/home", publicHandler.NavigateHome)
		r.Post("/nav/cart", publicHandler.NavigateCart)
		r.Post("/detail/quantity", publicHandler.UpdateQuantity)

		// Cart and checkout
		r.Post("/cart/add", cartHandler.AddToCart)
		r.Post("/cart/items/{id}/remove", cartHandler.RemoveFromCart)
		r.Post("/checkout", cartHandler.Checkout)

		// Local auth modal
		r.Route("/auth", func(r chi.Router) {
			r.Post("/open", authHandler.OpenModal)
			r.Post("/close", authHandler.CloseModal)
			r.Post("/mode", authHandler.SwitchMode)
			r.Post("/submit", authHandler.Submit)
			r.Post("/signout", authHandler.SignOut)
		})

		// Booking form and tickets
		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", bookingHandler.BookingsPage)
			r.Post("/", bookingHandler.CreateBooking)
			r.Post("/total", bookingHandler.BookingTotal)
			r.Post("/{id}/delete", bookingHandler.DeleteBooking)
		})
	})

	return r
}

func healthHandler(registry *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":   "ok",
			"service":  "ticketvue",
			"sessions": registry.Len(),
		})
	}
}
