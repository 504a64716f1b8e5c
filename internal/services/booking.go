package services

import (
	"context"
	"errors"
	"fmt"

	"ticketvue/internal/clients"
	"ticketvue/internal/logging"
	"ticketvue/internal/models"
	"ticketvue/internal/store"

	"github.com/sirupsen/logrus"
)

const (
	MessageTicketBooked    = "Ticket booked successfully!"
	MessageTicketCancelled = "Ticket cancelled successfully!"
	MessageBookingFailed   = "Error booking ticket. Please try again."
	MessageDeleteFailed    = "Error deleting ticket. Please try again."
)

// BookingService creates and cancels tickets for the booking page
type BookingService struct {
	backend clients.Backend
}

// NewBookingService creates a new booking service
func NewBookingService(backend clients.Backend) *BookingService {
	return &BookingService{backend: backend}
}

// UpdateDraft stores the form as typed so the live total follows it
func (s *BookingService) UpdateDraft(st *store.Store, form models.BookingForm) models.BookingForm {
	st.Dispatch(store.BookingFormChanged{Form: form})
	return form
}

// Book validates the form and creates a ticket. The form resets as soon as
// it validates, whatever the backend answers. Validation failures return
// models.ValidationErrors and send nothing.
func (s *BookingService) Book(ctx context.Context, st *store.Store, form models.BookingForm) (*models.Ticket, error) {
	req, err := form.ToRequest()
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			st.Dispatch(store.BookingRejected{Form: form, Errors: verrs})
		}
		return nil, err
	}

	st.Dispatch(store.BookingSubmitted{}, store.MessageDismissed{}, store.RequestStarted{})
	defer st.Dispatch(store.RequestFinished{})

	ticket, err := s.backend.CreateTicket(ctx, req)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("endpoint", "/tickets").Error("Error booking ticket")
		st.Dispatch(failureMessage(err, MessageBookingFailed))
		return nil, fmt.Errorf("failed to book ticket: %w", err)
	}

	st.Dispatch(
		store.TicketAdded{Ticket: *ticket},
		store.MessageShown{Text: MessageTicketBooked, Kind: store.BannerSuccess, AutoClear: true},
	)
	return ticket, nil
}

// Cancel deletes a ticket on the backend. The request is issued even when
// the id is not in the local list.
func (s *BookingService) Cancel(ctx context.Context, st *store.Store, ticketID string) error {
	st.Dispatch(store.RequestStarted{})
	defer st.Dispatch(store.RequestFinished{})

	if err := s.backend.DeleteTicket(ctx, ticketID); err != nil {
		logging.FromContext(ctx).WithError(err).WithFields(logrus.Fields{
			"endpoint":  "/tickets/:id",
			"ticket_id": ticketID,
		}).Error("Error deleting ticket")
		st.Dispatch(failureMessage(err, MessageDeleteFailed))
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	st.Dispatch(
		store.TicketRemoved{ID: ticketID},
		store.MessageShown{Text: MessageTicketCancelled, Kind: store.BannerSuccess, AutoClear: true},
	)
	return nil
}

// failureMessage surfaces the backend's own message when it sent one
func failureMessage(err error, fallback string) store.MessageShown {
	text := fallback
	var serverErr *clients.ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		text = "Error: " + serverErr.Message
	}
	return store.MessageShown{Text: text, Kind: store.BannerError}
}
