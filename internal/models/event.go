package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the ticket count at or below which the detail view warns.
const LowStockThreshold = 5

// DefaultEventDescription is shown when the backend sends no description.
const DefaultEventDescription = "Join us for an unforgettable experience. This event promises entertainment, excitement, and memories that will last a lifetime."

var eventDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Event represents a bookable event as served by the backend
type Event struct {
	ID               ID              `json:"id"`
	Name             string          `json:"name"`
	Location         string          `json:"location"`
	Date             string          `json:"date"`
	Price            decimal.Decimal `json:"price"`
	AvailableTickets int             `json:"availableTickets"`
	Description      string          `json:"description,omitempty"`
	Category         string          `json:"category,omitempty"`
}

// DisplayDate formats the event date for listings. Unparseable dates are shown as sent.
func (e Event) DisplayDate() string {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return e.Date
}

// IsLowStock reports whether few enough tickets remain to warn the buyer
func (e Event) IsLowStock() bool {
	return e.AvailableTickets <= LowStockThreshold
}

// DisplayDescription returns the description or the stock text.
func (e Event) DisplayDescription() string {
	if strings.TrimSpace(e.Description) == "" {
		return DefaultEventDescription
	}
	return e.Description
}

// Matches reports whether the name or location contains query, ignoring case.
func (e Event) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Location), q)
}

// FilterEvents returns the events matching query in catalog order.
// An empty query returns every event.
func FilterEvents(events []Event, query string) []Event {
	if query == "" {
		return events
	}

	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Matches(query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// FindEvent looks an event up by id
func FindEvent(events []Event, id string) (Event, error) {
	for _, e := range events {
		if e.ID.String() == id {
			return e, nil
		}
	}
	return Event{}, ErrEventNotFound
}
