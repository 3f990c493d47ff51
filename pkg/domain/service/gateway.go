package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"storefront/pkg/domain/model"
)

// TestCardSet is the fixed allow/deny list of one card network.
type TestCardSet struct {
	Approve []string
	Decline []string
}

// DefaultTestCards returns the per-network test cards the simulator ships
// with. Approve entries always settle, decline entries are always refused
// by the issuing bank.
func DefaultTestCards() map[model.CardNetwork]TestCardSet {
	return map[model.CardNetwork]TestCardSet{
		model.Visa: {
			Approve: []string{"4111111111111111", "4532111111111111"},
			Decline: []string{"4111111111111112"},
		},
		model.Mastercard: {
			Approve: []string{"5431111111111111", "5531111111111111"},
			Decline: []string{"5431111111111112"},
		},
		model.Amex: {
			Approve: []string{"371111111111114", "371111111111111"},
			Decline: []string{"371111111111113"},
		},
		model.MercadoPago: {
			Approve: []string{"5031111111111111", "5031755111111111"},
			Decline: []string{"5031111111111112"},
		},
	}
}

// GatewayConfig configures the settlement simulator. Delay and
// ApprovalRate are taken as given (an approval rate of 0 never approves
// unlisted cards); nil TestCards, Rand and Now fall back to the default
// test cards, a time-seeded source and the wall clock.
type GatewayConfig struct {
	Delay        time.Duration
	ApprovalRate float64
	TestCards    map[model.CardNetwork]TestCardSet
	Rand         *rand.Rand
	Now          func() time.Time
}

func NewMockGateway(cfg GatewayConfig) model.PaymentGateway {
	g := &mockGateway{
		delay:        cfg.Delay,
		approvalRate: cfg.ApprovalRate,
		testCards:    cfg.TestCards,
		rng:          cfg.Rand,
		now:          cfg.Now,
	}
	if g.testCards == nil {
		g.testCards = DefaultTestCards()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

type mockGateway struct {
	delay        time.Duration
	approvalRate float64
	testCards    map[model.CardNetwork]TestCardSet
	now          func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Settle models gateway latency with a fixed delay, then resolves the
// charge: allow-listed cards approve, deny-listed cards are refused, any
// other card gets a pseudo-random outcome.
func (g *mockGateway) Settle(ctx context.Context, card model.PaymentInfo, amountCents int64) (*model.GatewayResponse, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	digits := NormalizeCardNumber(card.CardNumber)
	set := g.testCards[DetectCardNetwork(digits)]

	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case containsCard(set.Approve, digits):
		return g.approved(), nil
	case containsCard(set.Decline, digits):
		return g.rejected("card rejected by issuing bank"), nil
	case g.rng.Float64() < g.approvalRate:
		return g.approved(), nil
	default:
		return g.rejected("transaction rejected"), nil
	}
}

func (g *mockGateway) approved() *model.GatewayResponse {
	return &model.GatewayResponse{
		Status:            model.GatewayApproved,
		StatusDetail:      "payment approved",
		TransactionID:     g.transactionID(),
		AuthorizationCode: strings.ToUpper(g.randomBase36(6)),
	}
}

func (g *mockGateway) rejected(detail string) *model.GatewayResponse {
	return &model.GatewayResponse{
		Status:        model.GatewayRejected,
		StatusDetail:  detail,
		TransactionID: g.transactionID(),
	}
}

// Transaction ids only need to be unique within a process lifetime; a
// millisecond prefix plus a random suffix is enough.
func (g *mockGateway) transactionID() string {
	return fmt.Sprintf("TX-%d-%s", g.now().UnixMilli(), g.randomBase36(9))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (g *mockGateway) randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[g.rng.Intn(len(base36))]
	}
	return string(b)
}

func containsCard(cards []string, digits string) bool {
	for _, c := range cards {
		if c == digits {
			return true
		}
	}
	return false
}
