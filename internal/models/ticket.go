package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Ticket is a booking record created by the backend
type Ticket struct {
	ID            ID              `json:"_id"`
	EventName     string          `json:"eventName"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

// UnmarshalJSON accepts the id as either "_id" or "id"
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type ticketAlias Ticket
	var raw struct {
		ticketAlias
		AltID ID `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = Ticket(raw.ticketAlias)
	if t.ID.IsZero() {
		t.ID = raw.AltID
	}
	return nil
}

// Total is price x quantity
func (t Ticket) Total() decimal.Decimal {
	return LineTotal(t.Price, t.Quantity)
}

// RemoveTicket returns tickets without the one with the given id
func RemoveTicket(tickets []Ticket, id string) []Ticket {
	kept := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ID.String() != id {
			kept = append(kept, t)
		}
	}
	return kept
}
