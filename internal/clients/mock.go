package clients

import (
	"context"

	"ticketvue/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockBackend is a testify mock of Backend for service and handler tests
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockBackend) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBackend) CreateTicket(ctx context.Context, req *models.TicketCreateRequest) (*models.Ticket, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockBackend) DeleteTicket(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ Backend = (*MockBackend)(nil)
