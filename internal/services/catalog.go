package services

import (
	"context"
	"fmt"

	"ticketvue/internal/clients"
	"ticketvue/internal/logging"
	"ticketvue/internal/models"
	"ticketvue/internal/store"
)

// CatalogService loads the event list into a session and handles browsing
type CatalogService struct {
	backend clients.Backend
}

// NewCatalogService creates a new catalog service
func NewCatalogService(backend clients.Backend) *CatalogService {
	return &CatalogService{backend: backend}
}

// EnsureLoaded fetches the catalog the first time a session needs it
func (s *CatalogService) EnsureLoaded(ctx context.Context, st *store.Store) error {
	state := st.State()
	if state.EventsLoaded || state.Loading {
		return nil
	}
	return s.Refresh(ctx, st)
}

// Refresh re-fetches the catalog. On failure the catalog is left as it
// was and the error is only logged; there is no retry.
func (s *CatalogService) Refresh(ctx context.Context, st *store.Store) error {
	st.Dispatch(store.EventsRequested{})

	events, err := s.backend.ListEvents(ctx)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("endpoint", "/events").Error("Error fetching events")
		st.Dispatch(store.EventsFailed{})
		return fmt.Errorf("failed to load events: %w", err)
	}

	st.Dispatch(store.EventsLoaded{Events: events})
	return nil
}

// Search updates the free-text filter
func (s *CatalogService) Search(st *store.Store, query string) {
	st.Dispatch(store.QueryChanged{Query: query})
}

// OpenEvent selects an event and navigates to its detail page
func (s *CatalogService) OpenEvent(st *store.Store, eventID string) error {
	event, err := models.FindEvent(st.State().Events, eventID)
	if err != nil {
		return err
	}
	st.Dispatch(store.EventOpened{Event: event})
	return nil
}

// ToggleFavorite flips the event's membership in the favorites set
func (s *CatalogService) ToggleFavorite(st *store.Store, eventID string) error {
	if _, err := models.FindEvent(st.State().Events, eventID); err != nil {
		return err
	}
	st.Dispatch(store.FavoriteToggled{EventID: eventID})
	return nil
}
