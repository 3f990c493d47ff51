package service

import (
	"context"
	"time"

	"storefront/pkg/domain/model"
)

// PaymentService validates and settles a single payment attempt. It never
// touches the cart store; orchestration is the caller's job.
type PaymentService interface {
	ProcessPayment(ctx context.Context, card model.PaymentInfo, amountCents int64) (*model.PaymentResult, error)
}

// NewPaymentService builds the engine. now is the clock used for expiry
// checks; nil means time.Now.
func NewPaymentService(gateway model.PaymentGateway, dispatcher EventDispatcher, now func() time.Time) PaymentService {
	if now == nil {
		now = time.Now
	}
	return &paymentService{gateway: gateway, dispatcher: dispatcher, now: now}
}

type paymentService struct {
	gateway    model.PaymentGateway
	dispatcher EventDispatcher
	now        func() time.Time
}

// ProcessPayment runs the checks in a fixed order, short-circuiting on
// the first failure: checksum, expiry, classification, digit count, then
// settlement. All validation failures are raised before the gateway is
// contacted, so no transaction id exists for them. The amount does not
// currently alter the outcome; settlement is amount-independent.
func (s *paymentService) ProcessPayment(ctx context.Context, card model.PaymentInfo, amountCents int64) (*model.PaymentResult, error) {
	digits := NormalizeCardNumber(card.CardNumber)

	if !ValidCardNumber(digits) {
		return nil, model.ErrInvalidCardNumber
	}
	if !ValidExpiryDate(card.ExpiryDate, s.now()) {
		return nil, model.ErrInvalidExpiryDate
	}

	network := DetectCardNetwork(digits)
	if network == model.UnknownNetwork {
		return nil, model.ErrUnsupportedCardType
	}
	if !validNetworkLength(network, digits) {
		return nil, model.ErrInvalidCardNumber
	}

	card.CardNumber = digits
	card.Network = network

	resp, err := s.gateway.Settle(ctx, card, amountCents)
	if err != nil {
		return nil, err
	}

	if resp.Status != model.GatewayApproved {
		_ = s.dispatcher.Dispatch(model.PaymentRejected{
			TransactionID: resp.TransactionID,
			Network:       network,
			Reason:        resp.StatusDetail,
		})
		return nil, &model.PaymentDeclinedError{TransactionID: resp.TransactionID, Reason: resp.StatusDetail}
	}

	_ = s.dispatcher.Dispatch(model.PaymentApproved{
		TransactionID: resp.TransactionID,
		Network:       network,
		AmountCents:   amountCents,
	})

	return &model.PaymentResult{
		TransactionID:     resp.TransactionID,
		AuthorizationCode: resp.AuthorizationCode,
		Network:           network,
		CardLastFour:      digits[len(digits)-4:],
		Message:           "payment processed successfully",
	}, nil
}
