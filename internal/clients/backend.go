package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ticketvue/internal/logging"
	"ticketvue/internal/models"
	"ticketvue/internal/monitoring"
)

// ErrNetworkFailure is wrapped by every error where no usable response came back
var ErrNetworkFailure = errors.New("network failure")

// ServerError is a non-2xx answer from the backend
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Backend is the REST API the UI is a front for
type Backend interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateOrder(ctx context.Context, req *models.OrderCreateRequest) error
	CreateTicket(ctx context.Context, req *models.TicketCreateRequest) (*models.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

// BackendClient talks JSON to the events/orders/tickets API. Requests are
// never retried and carry no authentication.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

// NewBackendClient creates a client for the API rooted at baseURL
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// ListEvents fetches the full catalog
func (c *BackendClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// CreateOrder submits a checkout. Any 2xx is success; the body is ignored.
func (c *BackendClient) CreateOrder(ctx context.Context, req *models.OrderCreateRequest) error {
	if err := c.do(ctx, http.MethodPost, "/orders", req, nil); err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

// CreateTicket books a ticket and returns the stored record
func (c *BackendClient) CreateTicket(ctx context.Context, req *models.TicketCreateRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets", req, &ticket); err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}
	return &ticket, nil
}

// DeleteTicket cancels a booking
func (c *BackendClient) DeleteTicket(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/tickets/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting ticket %s: %w", id, err)
	}
	return nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, in, out any) error {
	endpoint := method + " " + endpointLabel(path)
	start := time.Now()

	err := c.roundTrip(ctx, method, path, in, out)

	outcome := monitoring.OutcomeOK
	var serverErr *ServerError
	switch {
	case errors.As(err, &serverErr):
		outcome = monitoring.OutcomeServerError
	case err != nil:
		outcome = monitoring.OutcomeNetworkError
	}
	monitoring.ObserveBackendCall(endpoint, outcome, time.Since(start))

	return err
}

func (c *BackendClient) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(logging.HeaderCorrelationID, id)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrNetworkFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return &ServerError{StatusCode: resp.StatusCode, Message: eb.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrNetworkFailure, err)
	}
	return nil
}

// endpointLabel keeps metric cardinality bounded by collapsing ids
func endpointLabel(path string) string {
	if strings.HasPrefix(path, "/tickets/") {
		return "/tickets/:id"
	}
	return path
}
