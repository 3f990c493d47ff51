package model

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidCardNumber   = errors.New("invalid card number")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrUnsupportedCardType = errors.New("unsupported card type")
)

type CardNetwork string

const (
	Visa           CardNetwork = "visa"
	Mastercard     CardNetwork = "mastercard"
	Amex           CardNetwork = "amex"
	MercadoPago    CardNetwork = "mercadopago"
	UnknownNetwork CardNetwork = ""
)

// PaymentInfo holds the card fields of a single payment attempt. It is
// ephemeral: the raw card number must never outlive the attempt, only the
// masked last four digits may be kept.
type PaymentInfo struct {
	CardNumber string      `json:"card_number"`
	CardHolder string      `json:"card_holder"`
	ExpiryDate string      `json:"expiry_date"` // MM/YY
	CVV        string      `json:"cvv"`
	Network    CardNetwork `json:"network"`
}

// PaymentResult is the successful outcome of one payment attempt.
type PaymentResult struct {
	TransactionID     string      `json:"transaction_id"`
	AuthorizationCode string      `json:"authorization_code"`
	Network           CardNetwork `json:"network"`
	CardLastFour      string      `json:"card_last_four"`
	Message           string      `json:"message"`
}

type GatewayStatus int

const (
	GatewayApproved GatewayStatus = iota
	GatewayRejected
)

type GatewayResponse struct {
	Status            GatewayStatus
	StatusDetail      string
	TransactionID     string
	AuthorizationCode string
}

// PaymentGateway settles an already-validated charge. Settle blocks for
// the gateway's latency and honours context cancellation; the engine is
// stateless per call, so an abandoned result needs no reconciliation.
type PaymentGateway interface {
	Settle(ctx context.Context, card PaymentInfo, amountCents int64) (*GatewayResponse, error)
}

// PaymentDeclinedError is returned when the gateway rejected a charge
// that passed every validation step. It is a distinct type so callers
// handle a decline differently from malformed input.
type PaymentDeclinedError struct {
	TransactionID string
	Reason        string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// ConfirmationSender delivers an order confirmation to the customer.
// Delivery and retry policy belong to the implementation, not the core.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, customerName, customerEmail, orderDetails, totalAmount string) error
}
