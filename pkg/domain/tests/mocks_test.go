package tests

import (
	"context"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
)

// --- Shared mocks ---

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

// recordingGateway counts calls and replays a scripted response, so tests
// can assert the gateway was never reached on validation failures.
type recordingGateway struct {
	calls    int
	lastCard model.PaymentInfo
	response *model.GatewayResponse
	err      error
}

func (g *recordingGateway) Settle(_ context.Context, card model.PaymentInfo, _ int64) (*model.GatewayResponse, error) {
	g.calls++
	g.lastCard = card
	return g.response, g.err
}

type mockNotifier struct {
	ShouldError bool

	SendCount        int
	LastName         string
	LastEmail        string
	LastOrderDetails string
	LastTotal        string
}

func (m *mockNotifier) SendConfirmation(_ context.Context, customerName, customerEmail, orderDetails, totalAmount string) error {
	m.SendCount++
	m.LastName = customerName
	m.LastEmail = customerEmail
	m.LastOrderDetails = orderDetails
	m.LastTotal = totalAmount

	if m.ShouldError {
		return errRejectedBySMTP
	}
	return nil
}

type notifierError string

func (e notifierError) Error() string { return string(e) }

const errRejectedBySMTP = notifierError("mail relay refused the message")

func testProduct(id, name string, priceCents int64, stock int) model.Product {
	return model.Product{
		ID:          id,
		Name:        name,
		Description: "test product",
		PriceCents:  priceCents,
		Stock:       stock,
	}
}
