package clients

import (
	"context"
	"slices"
	"sync"
	"time"

	"ticketvue/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoBackend is an in-memory Backend with a sample catalog. It lets the
// UI run without the REST API.
type DemoBackend struct {
	mu      sync.Mutex
	events  []models.Event
	tickets []models.Ticket
	orders  []models.OrderCreateRequest
}

// NewDemoBackend creates a demo backend whose events start from now
func NewDemoBackend(now time.Time) *DemoBackend {
	day := func(d int) string { return now.AddDate(0, 0, d).Format("2006-01-02") }
	return &DemoBackend{
		events: []models.Event{
			{
				ID:               models.NewNumericID(1),
				Name:             "Tech Conference 2026",
				Location:         "San Francisco, CA",
				Date:             day(30),
				Price:            decimal.RequireFromString("199.00"),
				AvailableTickets: 120,
				Description:      "Join us for the biggest tech conference of the year featuring industry leaders and cutting-edge innovations.",
				Category:         "Technology",
			},
			{
				ID:               models.NewNumericID(2),
				Name:             "Music Festival Summer",
				Location:         "Austin, TX",
				Date:             day(60),
				Price:            decimal.RequireFromString("89.50"),
				AvailableTickets: 4,
				Description:      "Experience amazing live music from top artists in a beautiful outdoor setting.",
				Category:         "Music",
			},
			{
				ID:               models.NewNumericID(3),
				Name:             "Art Gallery Opening",
				Location:         "New York, NY",
				Date:             day(15),
				Price:            decimal.RequireFromString("25.00"),
				AvailableTickets: 40,
				Category:         "Art",
			},
			{
				ID:               models.NewNumericID(4),
				Name:             "Jazz in the Park",
				Location:         "Central Park, NY",
				Date:             day(7),
				Price:            decimal.RequireFromString("20.00"),
				AvailableTickets: 200,
				Description:      "An evening of open-air jazz.",
				Category:         "Music",
			},
		},
	}
}

func (d *DemoBackend) ListEvents(ctx context.Context) ([]models.Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.events), nil
}

func (d *DemoBackend) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) error {
	if req == nil || len(req.Items) == 0 {
		return &ServerError{StatusCode: 400, Message: "Order has no items"}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.orders = append(d.orders, *req)
	return nil
}

func (d *DemoBackend) CreateTicket(ctx context.Context, req *models.TicketCreateRequest) (*models.Ticket, error) {
	if req == nil {
		return nil, &ServerError{StatusCode: 400, Message: "Missing ticket"}
	}
	ticket := models.Ticket{
		ID:            models.NewID(uuid.NewString()),
		EventName:     req.EventName,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Quantity:      req.Quantity,
		Price:         decimal.NewFromFloat(req.Price),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.tickets = append(d.tickets, ticket)
	return &ticket, nil
}

func (d *DemoBackend) DeleteTicket(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	before := len(d.tickets)
	d.tickets = models.RemoveTicket(d.tickets, id)
	if len(d.tickets) == before {
		return &ServerError{StatusCode: 404, Message: "Ticket not found"}
	}
	return nil
}

// Orders returns the orders placed so far
func (d *DemoBackend) Orders() []models.OrderCreateRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.orders)
}

var _ Backend = (*DemoBackend)(nil)
