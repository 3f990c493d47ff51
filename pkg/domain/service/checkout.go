package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"storefront/pkg/domain/model"
)

var (
	ErrEmptyCart           = errors.New("cannot check out an empty cart")
	ErrMissingCustomerInfo = errors.New("customer info must be set before checkout")
	ErrNotificationFailed  = errors.New("confirmation email could not be delivered")
)

// CheckoutResult is produced once per approved checkout.
type CheckoutResult struct {
	OrderID    uuid.UUID
	Payment    *model.PaymentResult
	TotalCents int64
	EmailSent  bool
}

type CheckoutService interface {
	// Checkout charges the current cart total against the submitted card,
	// sends the customer a confirmation and clears the cart. When the
	// error is ErrNotificationFailed the payment has already been approved
	// and the returned result is still valid.
	Checkout(ctx context.Context, card model.PaymentInfo) (*CheckoutResult, error)
}

func NewCheckoutService(cart CartService, payments PaymentService, notifier model.ConfirmationSender, dispatcher EventDispatcher) CheckoutService {
	return &checkoutService{
		cart:       cart,
		payments:   payments,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

type checkoutService struct {
	cart       CartService
	payments   PaymentService
	notifier   model.ConfirmationSender
	dispatcher EventDispatcher
}

func (s *checkoutService) Checkout(ctx context.Context, card model.PaymentInfo) (*CheckoutResult, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	customer, ok := s.cart.CustomerInfo()
	if !ok {
		return nil, ErrMissingCustomerInfo
	}

	total := s.cart.TotalPriceCents()

	payment, err := s.payments.ProcessPayment(ctx, card, total)
	if err != nil {
		return nil, err
	}

	// Record the attempt without the raw card number or CVV; the masked
	// digits are all that may outlive the attempt.
	attempt := card
	attempt.CardNumber = payment.CardLastFour
	attempt.CVV = ""
	attempt.Network = payment.Network
	s.cart.SetPaymentInfo(attempt)

	orderID := uuid.New()
	result := &CheckoutResult{
		OrderID:    orderID,
		Payment:    payment,
		TotalCents: total,
		EmailSent:  true,
	}

	notifyErr := s.notifier.SendConfirmation(ctx, customer.Name, customer.Email, orderSummary(items, payment), FormatPrice(total))

	// The payment has settled; the session ends here even if the email
	// did not go out.
	s.cart.ClearCart()

	_ = s.dispatcher.Dispatch(model.OrderConfirmed{
		OrderID:       orderID,
		TransactionID: payment.TransactionID,
		TotalCents:    total,
		ItemCount:     len(items),
	})

	if notifyErr != nil {
		log.WithError(notifyErr).WithFields(log.Fields{
			"order_id": orderID,
			"email":    customer.Email,
		}).Error("confirmation email delivery failed")
		_ = s.dispatcher.Dispatch(model.ConfirmationEmailFailed{
			OrderID: orderID,
			Email:   customer.Email,
			Reason:  notifyErr.Error(),
		})
		result.EmailSent = false
		return result, ErrNotificationFailed
	}

	return result, nil
}

// orderSummary formats one line per cart entry plus the authorization
// details, ready for the confirmation template.
func orderSummary(items []model.CartItem, payment *model.PaymentResult) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s x%d - %s\n", item.Product.Name, item.Quantity,
			FormatPrice(item.Product.PriceCents*int64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\nAuthorization code: %s\nCard ending in: %s",
		payment.AuthorizationCode, payment.CardLastFour)
	return b.String()
}
